package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/blockbag/pkg/itemtype"
	"github.com/joshuapare/blockbag/pkg/types"
)

type opKind int

const (
	opPlace opKind = iota
	opRemove
	opReplace
	opFlush
)

// op is one parsed script line.
type op struct {
	line  int
	kind  opKind
	item  types.Item
	next  types.Item // replace target
	count int
}

// parseScript reads one operation per line:
//
//	place <item> [n]
//	remove <item> [n]
//	replace <old> <new>
//	flush
//
// Blank lines and lines starting with '#' are ignored.
func parseScript(r io.Reader, reg *itemtype.Registry) ([]op, error) {
	var ops []op
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		o := op{line: lineNo, count: 1}
		var err error

		switch verb := strings.ToLower(fields[0]); verb {
		case "place", "remove":
			if len(fields) < 2 || len(fields) > 3 {
				return nil, fmt.Errorf("line %d: usage: %s <item> [n]", lineNo, verb)
			}
			o.kind = opPlace
			if verb == "remove" {
				o.kind = opRemove
			}
			if o.item, err = parseItem(fields[1], reg); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if len(fields) == 3 {
				if o.count, err = strconv.Atoi(fields[2]); err != nil || o.count < 1 {
					return nil, fmt.Errorf("line %d: bad count %q", lineNo, fields[2])
				}
			}
		case "replace":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: usage: replace <old> <new>", lineNo)
			}
			o.kind = opReplace
			if o.item, err = parseItem(fields[1], reg); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if o.next, err = parseItem(fields[2], reg); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case "flush":
			if len(fields) != 1 {
				return nil, fmt.Errorf("line %d: usage: flush", lineNo)
			}
			o.kind = opFlush
		default:
			return nil, fmt.Errorf("line %d: unknown operation %q", lineNo, fields[0])
		}

		ops = append(ops, o)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

func parseItem(text string, reg *itemtype.Registry) (types.Item, error) {
	kind, variant, err := reg.Parse(text)
	if err != nil {
		return types.Item{}, err
	}
	return types.Item{Kind: kind, Variant: variant}, nil
}
