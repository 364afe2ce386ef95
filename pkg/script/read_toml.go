package script

import (
	"github.com/pelletier/go-toml/v2"
)

type tomlScript struct {
	Op []tomlOp `toml:"op"`
}

type tomlOp struct {
	Action    string    `toml:"action"`
	Event     string    `toml:"event"`
	Handler   string    `toml:"handler"`
	Signature *[]string `toml:"signature"`
}

func readTOML(data []byte) ([]rawOp, error) {
	var doc tomlScript
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	raws := make([]rawOp, len(doc.Op))
	for i, op := range doc.Op {
		raws[i] = rawOp{action: op.Action, event: op.Event, handler: op.Handler, signature: op.Signature}
	}
	return raws, nil
}
