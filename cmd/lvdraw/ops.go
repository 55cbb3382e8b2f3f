// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvdraw/session"
	"github.com/katalvlaran/lvdraw/view"
)

var errSyntax = errors.New("syntax error")

// viewOp is one parsed -ops entry: t(ranslate), s(cale), r(otate), e (reset).
type viewOp struct {
	verb byte
	args []float64
}

// parseOps splits "t:20,0;s:2,2;r:10;e" into operations.
func parseOps(list string) ([]viewOp, error) {
	var ops []viewOp
	for _, item := range strings.Split(list, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, rest, _ := strings.Cut(item, ":")
		name = strings.TrimSpace(name)
		if len(name) != 1 {
			return nil, fmt.Errorf("ops %q: %w", item, errSyntax)
		}
		var args []float64
		if rest = strings.TrimSpace(rest); rest != "" {
			for _, f := range strings.Split(rest, ",") {
				v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
				if err != nil {
					return nil, fmt.Errorf("ops %q: %w", item, err)
				}
				args = append(args, v)
			}
		}
		want := map[byte]int{'t': 2, 's': 2, 'r': 1, 'e': 0}
		n, ok := want[name[0]]
		if !ok || len(args) != n {
			return nil, fmt.Errorf("ops %q: %w", item, errSyntax)
		}
		ops = append(ops, viewOp{verb: name[0], args: args})
	}

	return ops, nil
}

func applyOps(vc *view.Context, ops []viewOp) error {
	for _, op := range ops {
		var err error
		switch op.verb {
		case 't':
			err = vc.Translate(op.args[0], op.args[1])
		case 's':
			err = vc.Scale(op.args[0], op.args[1])
		case 'r':
			err = vc.Rotate(op.args[0])
		case 'e':
			vc.Reset()
		}
		if err != nil {
			return fmt.Errorf("ops: %w", err)
		}
	}

	return nil
}

// replayFile feeds an event script to s. One event per line:
//
//	down X Y | up X Y | move X Y | key K | paint
//
// K is a single character or up/down/left/right. Blank lines and lines
// starting with '#' are skipped.
func replayFile(s *session.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		if err = replayLine(s, sc.Text()); err != nil {
			return fmt.Errorf("replay %s:%d: %w", path, line, err)
		}
	}
	if err = sc.Err(); err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	return nil
}

func replayLine(s *session.Session, text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	switch fields[0] {
	case "paint":
		return s.Paint()
	case "key":
		if len(fields) != 2 {
			return errSyntax
		}
		k, err := session.ParseKey(fields[1])
		if err != nil {
			return err
		}

		return s.KeyDown(k)
	case "down", "up", "move":
		if len(fields) != 3 {
			return errSyntax
		}
		x, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		y, err := strconv.Atoi(fields[2])
		if err != nil {
			return err
		}
		switch fields[0] {
		case "down":
			s.MouseDown(x, y)
		case "move":
			s.MouseMove(x, y)
		default:
			return s.MouseUp(x, y)
		}

		return nil
	}

	return fmt.Errorf("%q: %w", fields[0], errSyntax)
}
