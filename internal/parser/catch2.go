package parser

import (
	"fmt"
	"regexp"
	"strings"

	"exr/internal/domain"
)

// Catch2Parser parses Catch2 test binary output
type Catch2Parser struct{}

// NewCatch2Parser creates a new Catch2Parser
func NewCatch2Parser() *Catch2Parser {
	return &Catch2Parser{}
}

var (
	// All tests passed (12 assertions in 4 test cases)
	allPassedPattern = regexp.MustCompile(`All tests passed \((\d+) assertions? in (\d+) test cases?\)`)
	// test cases: 4 | 3 passed | 1 failed
	casesPattern = regexp.MustCompile(`test cases:\s*(\d+)`)
	// assertions: 12 | 11 passed | 1 failed
	assertionsPattern = regexp.MustCompile(`assertions:\s*(\d+)`)

	// /path/lasagna_test.cpp:42: FAILED:
	failedLinePattern = regexp.MustCompile(`^(.+?):(\d+):\s*FAILED:?\s*$`)
)

// ParseCounts extracts assertion and test case counts from Catch2 output.
// If parsing fails, returns (1,1) for success or (0,0) for failure (run-level fallback).
func (p *Catch2Parser) ParseCounts(output string, success bool) (assertions, testCases int) {
	if m := allPassedPattern.FindStringSubmatch(output); len(m) >= 3 {
		fmt.Sscanf(m[1], "%d", &assertions)
		fmt.Sscanf(m[2], "%d", &testCases)
		return assertions, testCases
	}

	if m := assertionsPattern.FindStringSubmatch(output); len(m) >= 2 {
		fmt.Sscanf(m[1], "%d", &assertions)
	}
	if m := casesPattern.FindStringSubmatch(output); len(m) >= 2 {
		fmt.Sscanf(m[1], "%d", &testCases)
	}
	if assertions > 0 || testCases > 0 {
		return assertions, testCases
	}

	// Fallback: treat the whole run as one opaque test
	if success {
		return 1, 1
	}
	return 0, 0
}

// ParseFailures parses failed assertions from Catch2 output.
// Catch2 prints each failing test case as a dashed header with the test name,
// followed by one "file:line: FAILED:" block per failed assertion.
func (p *Catch2Parser) ParseFailures(output string) []domain.Failure {
	var failures []domain.Failure
	lines := strings.Split(output, "\n")

	currentTest := ""
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// Test case name sits between two divider lines
		if isDivider(line) && i+2 < len(lines) && isDivider(lines[i+2]) {
			currentTest = strings.TrimSpace(lines[i+1])
			i += 2
			continue
		}

		m := failedLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		failure := domain.Failure{
			TestName: currentTest,
			File:     m[1],
		}
		fmt.Sscanf(m[2], "%d", &failure.Line)

		// Indented lines after FAILED: hold the original expression,
		// then "with expansion:" introduces the evaluated form.
		j := i + 1
		var expr []string
		for ; j < len(lines); j++ {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" || trimmed == "with expansion:" || !strings.HasPrefix(lines[j], " ") {
				break
			}
			expr = append(expr, trimmed)
		}
		failure.Expression = strings.Join(expr, " ")

		if j < len(lines) && strings.TrimSpace(lines[j]) == "with expansion:" {
			var expansion []string
			for j++; j < len(lines); j++ {
				trimmed := strings.TrimSpace(lines[j])
				if trimmed == "" || !strings.HasPrefix(lines[j], " ") {
					break
				}
				expansion = append(expansion, trimmed)
			}
			failure.Expansion = strings.Join(expansion, " ")
		}

		failures = append(failures, failure)
		i = j - 1
	}

	return failures
}

func isDivider(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) >= 10 && strings.Count(trimmed, "-") == len(trimmed)
}
