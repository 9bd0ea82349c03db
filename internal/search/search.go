// Package search performs case-insensitive substring search over the
// script catalog. No tokenization, fuzziness, or ranking: results follow
// catalog order and each node contributes at most one match.
package search

import (
	"strings"
	"unicode"

	"github.com/salesflow-dev/salesflow/internal/catalog"
)

// MatchType identifies which part of a node matched, in priority order.
type MatchType string

const (
	MatchTitle      MatchType = "title"
	MatchScript     MatchType = "script"
	MatchQA         MatchType = "qa"
	MatchCheckpoint MatchType = "checkpoint"
)

// contextWindow is the number of characters of surrounding script text
// shown on either side of a script-body match.
const contextWindow = 30

// Result is one matched node with the text that matched.
type Result struct {
	Node      catalog.Node
	MatchType MatchType
	MatchText string
}

// Query searches the catalog for the given term. Per node, the first
// matching category wins: title, then script body, then Q&A, then
// checkpoints. An empty or whitespace-only query returns nothing.
func Query(cat *catalog.Catalog, query string) []Result {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	term := strings.ToLower(query)
	termRunes := []rune(term)

	var results []Result
	for _, node := range cat.Nodes() {
		if strings.Contains(strings.ToLower(node.Title), term) {
			results = append(results, Result{
				Node:      node,
				MatchType: MatchTitle,
				MatchText: node.Title,
			})
			continue
		}

		if idx := runeIndexFold([]rune(node.Script.Main), termRunes); idx >= 0 {
			results = append(results, Result{
				Node:      node,
				MatchType: MatchScript,
				MatchText: scriptContext(node.Script.Main, idx, len(termRunes)),
			})
			continue
		}

		if qa, ok := matchQA(node, term); ok {
			results = append(results, Result{
				Node:      node,
				MatchType: MatchQA,
				MatchText: qa.Question,
			})
			continue
		}

		if cp, ok := matchCheckpoint(node, term); ok {
			results = append(results, Result{
				Node:      node,
				MatchType: MatchCheckpoint,
				MatchText: cp,
			})
		}
	}
	return results
}

// scriptContext extracts the matched text with up to contextWindow
// characters of surrounding script on each side, ellipsized wherever the
// window truncates the body. idx and termLen are rune offsets so the
// window never splits a multibyte character.
func scriptContext(text string, idx, termLen int) string {
	runes := []rune(text)
	start := idx - contextWindow
	if start < 0 {
		start = 0
	}
	end := idx + termLen + contextWindow
	if end > len(runes) {
		end = len(runes)
	}

	out := string(runes[start:end])
	if start > 0 {
		out = "..." + out
	}
	if end < len(runes) {
		out = out + "..."
	}
	return out
}

// runeIndexFold returns the rune offset of the first case-insensitive
// occurrence of term in text, or -1. Folding rune by rune keeps offsets
// aligned with the original text even where a rune's lowercase form has a
// different byte length.
func runeIndexFold(text, term []rune) int {
	if len(term) == 0 {
		return -1
	}
	for i := 0; i+len(term) <= len(text); i++ {
		match := true
		for j, r := range term {
			if unicode.ToLower(text[i+j]) != unicode.ToLower(r) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func matchQA(node catalog.Node, term string) (catalog.QA, bool) {
	for _, qa := range node.QA {
		if strings.Contains(strings.ToLower(qa.Question), term) ||
			strings.Contains(strings.ToLower(qa.Answer), term) {
			return qa, true
		}
	}
	return catalog.QA{}, false
}

func matchCheckpoint(node catalog.Node, term string) (string, bool) {
	for _, cp := range node.Checkpoints {
		if strings.Contains(strings.ToLower(cp), term) {
			return cp, true
		}
	}
	return "", false
}
