package ir

import (
	"strconv"
	"strings"
)

// BoolOptions controls boolean scalar interpretation.
type BoolOptions struct {
	// Lenient additionally accepts yes/no/on/off and ignores case. The
	// strict forms are "true" and "false" only.
	Lenient bool
}

// ListOptions controls list access.
type ListOptions struct {
	// CoerceScalar lets a scalar read as a one-element list.
	CoerceScalar bool
}

// AsString returns the scalar text of n, or a WrongShapeError when n is
// not a scalar.
func (n *Node) AsString() (string, error) {
	if s, ok := n.Scalar(); ok {
		return s, nil
	}
	return "", &WrongShapeError{Want: KindScalar, Got: n.kindOf()}
}

// AsBool interprets n as a boolean scalar.
func (n *Node) AsBool(opts BoolOptions) (bool, error) {
	s, err := n.AsString()
	if err != nil {
		return false, err
	}
	if opts.Lenient {
		switch strings.ToLower(s) {
		case "true", "yes", "on":
			return true, nil
		case "false", "no", "off":
			return false, nil
		}
		return false, &ValueError{Literal: s, Want: "bool"}
	}
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &ValueError{Literal: s, Want: "bool"}
}

// AsInt interprets n as a signed decimal integer scalar.
func (n *Node) AsInt() (int64, error) {
	s, err := n.AsString()
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if perr != nil {
		return 0, &ValueError{Literal: s, Want: "int", Err: perr}
	}
	return v, nil
}

// AsUint interprets n as an unsigned decimal integer scalar.
func (n *Node) AsUint() (uint64, error) {
	s, err := n.AsString()
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if perr != nil {
		return 0, &ValueError{Literal: s, Want: "uint", Err: perr}
	}
	return v, nil
}

// AsFloat interprets n as a floating-point scalar.
func (n *Node) AsFloat() (float64, error) {
	s, err := n.AsString()
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if perr != nil {
		return 0, &ValueError{Literal: s, Want: "float", Err: perr}
	}
	return v, nil
}

// AsRune interprets n as a single-character scalar.
func (n *Node) AsRune() (rune, error) {
	s, err := n.AsString()
	if err != nil {
		return 0, err
	}
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, &ValueError{Literal: s, Want: "char"}
	}
	return rs[0], nil
}

// AsList returns the element nodes of n. Scalars coerce to one-element
// lists when opts.CoerceScalar is set; empty nodes read as empty lists.
func (n *Node) AsList(opts ListOptions) ([]*Node, error) {
	switch n.kindOf() {
	case KindEmpty:
		return nil, nil
	case KindList:
		return n.Items(), nil
	case KindScalar:
		if opts.CoerceScalar {
			return []*Node{n}, nil
		}
	}
	return nil, &WrongShapeError{Want: KindList, Got: n.kindOf()}
}

// AsMap shape-checks n as a map and returns its data pairs in order,
// duplicates included.
func (n *Node) AsMap() ([]Pair, error) {
	switch n.kindOf() {
	case KindEmpty:
		return nil, nil
	case KindMap:
	default:
		return nil, &WrongShapeError{Want: KindMap, Got: n.kindOf()}
	}
	var ps []Pair
	for _, p := range n.Pairs {
		if isMeta(p) {
			continue
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// GetString is Get followed by AsString, with the key recorded on shape
// and value errors.
func (n *Node) GetString(key string) (string, error) {
	c, err := n.Get(key)
	if err != nil {
		return "", err
	}
	s, err := c.AsString()
	return s, keyed(err, key)
}

// GetBool is Get followed by AsBool.
func (n *Node) GetBool(key string, opts BoolOptions) (bool, error) {
	c, err := n.Get(key)
	if err != nil {
		return false, err
	}
	v, err := c.AsBool(opts)
	return v, keyed(err, key)
}

// GetInt is Get followed by AsInt.
func (n *Node) GetInt(key string) (int64, error) {
	c, err := n.Get(key)
	if err != nil {
		return 0, err
	}
	v, err := c.AsInt()
	return v, keyed(err, key)
}

// GetFloat is Get followed by AsFloat.
func (n *Node) GetFloat(key string) (float64, error) {
	c, err := n.Get(key)
	if err != nil {
		return 0, err
	}
	v, err := c.AsFloat()
	return v, keyed(err, key)
}

// GetList is Get followed by AsList.
func (n *Node) GetList(key string, opts ListOptions) ([]*Node, error) {
	c, err := n.Get(key)
	if err != nil {
		return nil, err
	}
	items, err := c.AsList(opts)
	return items, keyed(err, key)
}

// GetStrings reads key as a list of scalar items.
func (n *Node) GetStrings(key string, opts ListOptions) ([]string, error) {
	items, err := n.GetList(key, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, err := it.AsString()
		if err != nil {
			return nil, keyed(err, key)
		}
		out = append(out, s)
	}
	return out, nil
}

func (n *Node) kindOf() Kind {
	if n == nil {
		return KindEmpty
	}
	return n.Kind
}

func keyed(err error, key string) error {
	switch e := err.(type) {
	case nil:
		return nil
	case *WrongShapeError:
		e.Key = key
		return e
	case *ValueError:
		e.Key = key
		return e
	}
	return err
}
