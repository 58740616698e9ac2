package layoutscript

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/opengrid/pkg/compact"
	"github.com/chazu/opengrid/pkg/grid"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms layout script source before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: screw-size -> screw_size
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value, treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a SexpInt.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a SexpBool.
func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected true or false, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_lite) and plain strings ("lite").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// ---------------------------------------------------------------------------
// Script state
// ---------------------------------------------------------------------------

// scriptState accumulates what the script declares: a cell grid plus
// assembly options. The builtins mutate it; plan() turns it into a
// feature plan once the script has run to completion.
type scriptState struct {
	cells [][]grid.Cell
	opts  grid.Options

	// screw-size fields the script set explicitly, by keyword name.
	// Unset fields fall back to the variant default when the plan is
	// assembled, so scripts may override just one measurement.
	screws map[string]float64
}

func newScriptState() *scriptState {
	return &scriptState{opts: grid.DefaultOptions()}
}

// setCell flips one cell of the declared layout.
func (st *scriptState) setCell(name string, args []zygo.Sexp, value grid.Cell) error {
	if st.cells == nil {
		return fmt.Errorf("%s: no layout defined yet; call grid or rows first", name)
	}
	if len(args) != 2 {
		return fmt.Errorf("%s requires a row and a column, got %d arguments", name, len(args))
	}
	r, err := toInt(args[0])
	if err != nil {
		return fmt.Errorf("%s: row: %w", name, err)
	}
	c, err := toInt(args[1])
	if err != nil {
		return fmt.Errorf("%s: column: %w", name, err)
	}
	if r < 0 || r >= len(st.cells) || c < 0 || c >= len(st.cells[0]) {
		return fmt.Errorf("%s: cell (%d,%d) outside %dx%d layout", name, r, c, len(st.cells), len(st.cells[0]))
	}
	st.cells[r][c] = value
	return nil
}

// plan assembles the accumulated state into a feature plan.
func (st *scriptState) plan() (*grid.Plan, error) {
	if st.cells == nil {
		return nil, fmt.Errorf("script defines no layout; call grid or rows")
	}
	layout, err := grid.NewLayout(st.cells)
	if err != nil {
		return nil, err
	}

	opts := st.opts
	if len(st.screws) > 0 {
		size := grid.DefaultScrewSize(opts.Variant)
		if v, ok := st.screws["diameter"]; ok {
			size.Diameter = v
		}
		if v, ok := st.screws["head-diameter"]; ok {
			size.HeadDiameter = v
		}
		if v, ok := st.screws["head-inset"]; ok {
			size.HeadInset = v
		}
		opts.ScrewSize = &size
	}
	return grid.Assemble(layout, opts), nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the layout DSL builtins into a zygomys
// environment. The builtins mutate the provided script state as the
// script runs.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable
// string literals.
func registerBuiltins(env *zygo.Zlisp, st *scriptState) {

	// -----------------------------------------------------------------------
	// (grid :rows 4 :cols 6)
	//
	// Declares a layout with every cell occupied; holes are punched
	// afterwards. Dimensions share the compact code cap so a script
	// cannot allocate an absurd grid.
	// -----------------------------------------------------------------------
	env.AddFunction("grid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if st.cells != nil {
			return zygo.SexpNull, fmt.Errorf("grid: layout already defined")
		}
		pa := parseArgs(args)

		rows, cols := 0, 0
		if v, ok := pa.kw["rows"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("grid: rows: %w", err)
			}
			rows = n
		}
		if v, ok := pa.kw["cols"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("grid: cols: %w", err)
			}
			cols = n
		}
		if rows < 1 || rows > compact.MaxDim || cols < 1 || cols > compact.MaxDim {
			return zygo.SexpNull, fmt.Errorf("grid: dimensions %dx%d outside 1..%d", rows, cols, compact.MaxDim)
		}

		layout, err := grid.FullLayout(rows, cols)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("grid: %w", err)
		}
		st.cells = layout.Cells()
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (rows "xx.x" "xxxx" "x..x")
	//
	// Declares a layout row by row: 'x' is a tile, '.' a hole.
	// -----------------------------------------------------------------------
	env.AddFunction("rows", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if st.cells != nil {
			return zygo.SexpNull, fmt.Errorf("rows: layout already defined")
		}
		if len(args) == 0 {
			return zygo.SexpNull, fmt.Errorf("rows requires at least one row string")
		}

		lines := make([]string, len(args))
		for i, a := range args {
			s, err := toString(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rows: row %d: %w", i, err)
			}
			lines[i] = s
		}

		layout, err := grid.ParseLayout(lines...)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rows: %w", err)
		}
		st.cells = layout.Cells()
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (hole 1 2)
	// -----------------------------------------------------------------------
	env.AddFunction("hole", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := st.setCell("hole", args, grid.Hole); err != nil {
			return zygo.SexpNull, err
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (tile 1 2)
	// -----------------------------------------------------------------------
	env.AddFunction("tile", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := st.setCell("tile", args, grid.Tile); err != nil {
			return zygo.SexpNull, err
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (variant :lite)
	// -----------------------------------------------------------------------
	env.AddFunction("variant", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("variant requires exactly one argument")
		}
		s, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("variant: %w", err)
		}
		v, err := grid.ParseVariant(s)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("variant: %w", err)
		}
		st.opts.Variant = v
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (connectors) or (connectors false)
	// -----------------------------------------------------------------------
	env.AddFunction("connectors", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		on, err := flagValue("connectors", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		st.opts.Connectors = on
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (chamfers) or (chamfers false)
	// -----------------------------------------------------------------------
	env.AddFunction("chamfers", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		on, err := flagValue("chamfers", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		st.opts.Chamfers = on
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (screws :corners)
	// -----------------------------------------------------------------------
	env.AddFunction("screws", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("screws requires exactly one argument")
		}
		s, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("screws: %w", err)
		}
		m, err := grid.ParseScrewMode(s)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("screws: %w", err)
		}
		st.opts.Screws = m
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (screw-size :diameter 4.2 :head-diameter 8.0 :head-inset 1.0)
	//
	// Note: registered as "screw_size" because zygomys does not support
	// hyphens in identifiers. The preprocessor converts screw-size to
	// screw_size in the source.
	// -----------------------------------------------------------------------
	env.AddFunction("screw_size", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.kw) == 0 {
			return zygo.SexpNull, fmt.Errorf("screw-size requires at least one of :diameter, :head-diameter, :head-inset")
		}
		for field, v := range pa.kw {
			switch field {
			case "diameter", "head-diameter", "head-inset":
			default:
				return zygo.SexpNull, fmt.Errorf("screw-size: unknown field %q", field)
			}
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("screw-size: %s: %w", field, err)
			}
			if f <= 0 {
				return zygo.SexpNull, fmt.Errorf("screw-size: %s must be positive, got %v", field, f)
			}
			if st.screws == nil {
				st.screws = make(map[string]float64)
			}
			st.screws[field] = f
		}
		return zygo.SexpNull, nil
	})
}

// flagValue reads an optional boolean argument: no argument means
// true, one argument must be a bool.
func flagValue(name string, args []zygo.Sexp) (bool, error) {
	switch len(args) {
	case 0:
		return true, nil
	case 1:
		on, err := toBool(args[0])
		if err != nil {
			return false, fmt.Errorf("%s: %w", name, err)
		}
		return on, nil
	default:
		return false, fmt.Errorf("%s takes at most one argument, got %d", name, len(args))
	}
}
