// Package richtext models the tiptap JSONContent document tree.
//
// The editor schema evolves independently of this server, so every node and
// mark keeps unrecognized fields verbatim and writes them back on marshal.
package richtext

import (
	"encoding/json"
	"strings"
)

type Mark struct {
	Type  string                     `json:"type"`
	Attrs map[string]json.RawMessage `json:"attrs,omitempty"`

	// Extra holds fields this server does not know about.
	Extra map[string]json.RawMessage `json:"-"`
}

type Node struct {
	Type    string                     `json:"type,omitempty"`
	Attrs   map[string]json.RawMessage `json:"attrs,omitempty"`
	Content []*Node                    `json:"content,omitempty"`
	Marks   []Mark                     `json:"marks,omitempty"`
	Text    *string                    `json:"text,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// CountWords sums the whitespace-separated tokens of every leaf text in the
// tree. Traversal uses an explicit work list: documents arrive from clients
// and may be arbitrarily deep, and recursing on them would risk the stack.
func (n *Node) CountWords() int64 {
	if n == nil {
		return 0
	}
	var total int64
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		if node.Text != nil {
			total += int64(len(strings.Fields(*node.Text)))
		}
		stack = append(stack, node.Content...)
	}
	return total
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*n = Node{}
	for key, raw := range fields {
		var err error
		switch key {
		case "type":
			err = json.Unmarshal(raw, &n.Type)
		case "attrs":
			err = json.Unmarshal(raw, &n.Attrs)
		case "content":
			err = json.Unmarshal(raw, &n.Content)
		case "marks":
			err = json.Unmarshal(raw, &n.Marks)
		case "text":
			err = json.Unmarshal(raw, &n.Text)
		default:
			if n.Extra == nil {
				n.Extra = make(map[string]json.RawMessage)
			}
			n.Extra[key] = raw
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (n Node) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(n.Extra)+5)
	for key, raw := range n.Extra {
		fields[key] = raw
	}
	if err := putField(fields, "type", n.Type, n.Type != ""); err != nil {
		return nil, err
	}
	if err := putField(fields, "attrs", n.Attrs, n.Attrs != nil); err != nil {
		return nil, err
	}
	if err := putField(fields, "content", n.Content, n.Content != nil); err != nil {
		return nil, err
	}
	if err := putField(fields, "marks", n.Marks, n.Marks != nil); err != nil {
		return nil, err
	}
	if err := putField(fields, "text", n.Text, n.Text != nil); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

func (m *Mark) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*m = Mark{}
	for key, raw := range fields {
		var err error
		switch key {
		case "type":
			err = json.Unmarshal(raw, &m.Type)
		case "attrs":
			err = json.Unmarshal(raw, &m.Attrs)
		default:
			if m.Extra == nil {
				m.Extra = make(map[string]json.RawMessage)
			}
			m.Extra[key] = raw
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m Mark) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(m.Extra)+2)
	for key, raw := range m.Extra {
		fields[key] = raw
	}
	if err := putField(fields, "type", m.Type, true); err != nil {
		return nil, err
	}
	if err := putField(fields, "attrs", m.Attrs, m.Attrs != nil); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

func putField(fields map[string]json.RawMessage, key string, value interface{}, present bool) error {
	if !present {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	fields[key] = raw
	return nil
}
