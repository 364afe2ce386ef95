package script

import (
	"github.com/beevik/etree"
)

// readXML reads
//
//	<script>
//	  <op action="add" event="Open" handler="onOpen">
//	    <signature><param type="int"/></signature>
//	  </op>
//	</script>
//
// An op without a <signature> element declares no parameters.
func readXML(data []byte) ([]rawOp, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	root := doc.SelectElement("script")
	if root == nil {
		return nil, unsupported(FormatXML, "missing <script> root element")
	}

	ops := root.SelectElements("op")
	raws := make([]rawOp, 0, len(ops))
	for _, el := range ops {
		raw := rawOp{
			action:  el.SelectAttrValue("action", ""),
			event:   el.SelectAttrValue("event", ""),
			handler: el.SelectAttrValue("handler", ""),
		}
		if sigEl := el.SelectElement("signature"); sigEl != nil {
			params := sigEl.SelectElements("param")
			types := make([]string, 0, len(params))
			for _, p := range params {
				types = append(types, p.SelectAttrValue("type", ""))
			}
			raw.signature = &types
		}
		raws = append(raws, raw)
	}
	return raws, nil
}
