package script

import (
	"gopkg.in/yaml.v3"
)

type yamlScript struct {
	Ops []yamlOp `yaml:"ops"`
}

type yamlOp struct {
	Action    string    `yaml:"action"`
	Event     string    `yaml:"event"`
	Handler   string    `yaml:"handler"`
	Signature *[]string `yaml:"signature"`
}

func readYAML(data []byte) ([]rawOp, error) {
	var doc yamlScript
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	raws := make([]rawOp, len(doc.Ops))
	for i, op := range doc.Ops {
		raws[i] = rawOp{action: op.Action, event: op.Event, handler: op.Handler, signature: op.Signature}
	}
	return raws, nil
}
