package main

import (
	"fmt"
	"sort"
	"strings"

	"codeberg.org/aksdemo/server/internal/probe"
)

// renders the probe report as a bordered summary
func render(report *probe.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(report.Endpoint))
	b.WriteString("\n")

	for _, check := range report.Checks {
		b.WriteString(pathStyle.Render(check.Path))

		if check.Err != nil {
			b.WriteString(failStyle.Render("FAIL"))
			b.WriteString(detailStyle.Render(check.Err.Error()))
		} else {
			b.WriteString(okStyle.Render(fmt.Sprintf("%d", check.Status)))
			b.WriteString(detailStyle.Render(formatBody(check.Body)))
		}

		b.WriteString(detailStyle.Render(fmt.Sprintf("(%dms)", check.Latency.Milliseconds())))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if report.Healthy() {
		b.WriteString(okStyle.Render("healthy"))
	} else {
		b.WriteString(failStyle.Render("unhealthy"))
	}

	return boxStyle.Render(b.String())
}

// formats a flat document as key=value pairs in key order
func formatBody(body map[string]string) string {
	keys := make([]string, 0, len(body))
	for key := range body {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%q", key, body[key]))
	}

	return strings.Join(pairs, " ")
}
