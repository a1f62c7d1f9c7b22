package grammar

import "gopkg.in/yaml.v3"

// yamlProduction is a single production as written in a grammar YAML
// document: a head plus its list of alternative bodies, each body a
// plain list of symbol names ("ε" denotes an empty production).
type yamlProduction struct {
	Head   string     `yaml:"head"`
	Bodies [][]string `yaml:"bodies"`
}

// yamlGrammar is the top-level document shape accepted by LoadRule:
// a grammar shipped as data rather than code, mirroring how the
// teacher's harness configuration loads YAML-described rule sets.
type yamlGrammar struct {
	Productions []yamlProduction `yaml:"productions"`
}

// LoadRule parses a YAML document into a Rule. Each entry's bodies
// become Production values; a body written as ["ε"] becomes the
// Epsilon production.
func LoadRule(data []byte) (Rule, error) {
	var doc yamlGrammar
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	rule := MapRule{}
	for _, p := range doc.Productions {
		head := Symbol(p.Head)
		for _, body := range p.Bodies {
			prod := make(Production, len(body))
			for i, s := range body {
				prod[i] = Symbol(s)
			}
			rule[head] = append(rule[head], prod)
		}
	}
	return rule, nil
}
