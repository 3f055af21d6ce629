// Package suite loads and runs YAML scenario files that exercise the
// matchers against the example handlers.
//
// A suite file looks like:
//
//	suite: auth
//	cases:
//	  - name: anonymous is redirected
//	    handler: protected
//	    request:
//	      method: GET
//	      path: /account
//	    matcher: toThrowRedirect
//	    with:
//	      status: 302
//	      location: /login
package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is one parsed scenario file.
type Suite struct {
	Name  string  `yaml:"suite"`
	Cases []*Case `yaml:"cases"`

	// Path is the file the suite was loaded from.
	Path string `yaml:"-"`
}

// Case is a single scenario: invoke a handler with a request, then
// evaluate a named matcher against whatever it threw.
type Case struct {
	Name    string         `yaml:"name"`
	Handler string         `yaml:"handler"`
	Request Request        `yaml:"request"`
	Matcher string         `yaml:"matcher"`
	With    map[string]any `yaml:"with"`
	Negated bool           `yaml:"negated"`
}

// Request describes the mock event to build for a case.
type Request struct {
	Method  string            `yaml:"method"`
	Path    string            `yaml:"path"`
	Headers map[string]string `yaml:"headers"`
	Params  map[string]string `yaml:"params"`
}

// Load parses a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite file: %w", err)
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing suite file %s: %w", path, err)
	}
	s.Path = path

	for i, c := range s.Cases {
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		if c.Request.Method == "" {
			c.Request.Method = "GET"
		}
		if c.Request.Path == "" {
			c.Request.Path = "/"
		}
	}

	return &s, nil
}
