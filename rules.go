package vig2p

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// RuleSet holds an ordered list of replacement rules loaded from a
// rule file. It is independent of the built-in tables: a Converter
// only consults a RuleSet when one is installed with WithRules.
type RuleSet struct {
	// In and Out are parallel slices; rule i rewrites In[i] to Out[i].
	In  []string
	Out []string
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int { return len(rs.In) }

// Apply runs every rule over s in file order and returns the result.
func (rs *RuleSet) Apply(s string) string {
	for i, in := range rs.In {
		s = strings.ReplaceAll(s, in, rs.Out[i])
	}
	return s
}

// LoadRules reads replacement rules from r. Each line holds
// input<TAB>output; a line without an output column deletes its input.
// Blank lines and lines starting with '#' are skipped.
func LoadRules(r io.Reader) (*RuleSet, error) {
	rs := &RuleSet{}
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.SplitN(line, "\t", 2)
		if cols[0] == "" {
			return nil, fmt.Errorf("line %d: empty rule input", lineNum)
		}
		out := ""
		if len(cols) > 1 {
			out = cols[1]
		}
		rs.In = append(rs.In, cols[0])
		rs.Out = append(rs.Out, out)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return rs, nil
}

// LoadRulesFile reads replacement rules from the file at path.
func LoadRulesFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules: %w", err)
	}
	defer f.Close()
	rs, err := LoadRules(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}
