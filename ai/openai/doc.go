// Package openai implements the ai.RelevanceJudge interface against
// OpenAI-compatible chat APIs (OpenAI, Ollama, LocalAI, vLLM).
//
// All calls run with temperature 0 and, where the response is
// structured, JSON mode plus response repair for common model
// formatting mistakes. Every call site goes through the retry policy
// from the ai package: bounded attempts, per-attempt timeout, linear
// backoff.
package openai
