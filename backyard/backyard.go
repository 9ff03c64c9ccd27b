package backyard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/katalvlaran/tunnels/gridgraph"
	"github.com/katalvlaran/tunnels/prim_kruskal"
)

var (
	// ErrBadHeader indicates a missing or malformed "rows cols" header.
	ErrBadHeader = errors.New("backyard: bad header")
	// ErrBadLine indicates a tunnel line without exactly five integers.
	ErrBadLine = errors.New("backyard: bad tunnel line")
	// ErrNegativeWeight indicates a tunnel with a negative cost.
	ErrNegativeWeight = errors.New("backyard: negative tunnel cost")
)

// separators turns "(r,c)" notation into whitespace separated integers.
var separators = strings.NewReplacer("(", " ", ")", " ", ",", " ")

// Dig is a parsed dig-site file: the grid, the cells in use and the candidate tunnels.
type Dig struct {
	Grid     *gridgraph.Grid
	Vertices *gridgraph.VertexMap
	Edges    []prim_kruskal.Edge
}

// Plan is the chosen tunnel network.
type Plan struct {
	Edges []prim_kruskal.Edge
	Total int64
}

// Parse reads a dig-site file from r.
// Header errors are returned immediately; tunnel line errors are collected and
// returned together as a *multierror.Error.
func Parse(r io.Reader) (*Dig, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	// The header is the first two integers, which may span lines.
	var header []int
	for len(header) < 2 && sc.Scan() {
		lineNo++
		for _, tok := range strings.Fields(sc.Text()) {
			if len(header) == 2 {
				return nil, errors.Wrapf(ErrBadHeader, "line %d: unexpected %q", lineNo, tok)
			}
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(ErrBadHeader, "line %d: %q is not an integer", lineNo, tok)
			}
			header = append(header, n)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "backyard: read header")
	}
	if len(header) < 2 {
		return nil, errors.Wrap(ErrBadHeader, "want rows and cols")
	}
	grid, err := gridgraph.NewGrid(header[0], header[1])
	if err != nil {
		return nil, errors.Wrapf(ErrBadHeader, "line %d: %v", lineNo, err)
	}

	dig := &Dig{
		Grid:     grid,
		Vertices: gridgraph.NewVertexMap(grid),
	}
	var result *multierror.Error
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		e, err := dig.parseEdge(text)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "line %d", lineNo))
			continue
		}
		dig.Edges = append(dig.Edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "backyard: read tunnels")
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return dig, nil
}

// parseEdge decodes "(r1,c1) (r2,c2) w" and registers both cells.
func (d *Dig) parseEdge(text string) (prim_kruskal.Edge, error) {
	fields := strings.Fields(separators.Replace(text))
	if len(fields) != 5 {
		return prim_kruskal.Edge{}, errors.Wrapf(ErrBadLine, "want 5 integers, got %d fields in %q", len(fields), text)
	}
	var nums [5]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return prim_kruskal.Edge{}, errors.Wrapf(ErrBadLine, "%q is not an integer", f)
		}
		nums[i] = n
	}
	if nums[4] < 0 {
		return prim_kruskal.Edge{}, errors.Wrapf(ErrNegativeWeight, "cost %d", nums[4])
	}
	// Check both cells before registering either, so a rejected line allocates no ids.
	if _, err := d.Grid.Index(nums[0], nums[1]); err != nil {
		return prim_kruskal.Edge{}, err
	}
	if _, err := d.Grid.Index(nums[2], nums[3]); err != nil {
		return prim_kruskal.Edge{}, err
	}
	u, err := d.Vertices.Add(nums[0], nums[1])
	if err != nil {
		return prim_kruskal.Edge{}, err
	}
	v, err := d.Vertices.Add(nums[2], nums[3])
	if err != nil {
		return prim_kruskal.Edge{}, err
	}

	return prim_kruskal.Edge{U: u, V: v, Weight: int64(nums[4])}, nil
}

// Solve computes the cheapest tunnel network connecting every cell in use.
// opts select the algorithm and tracing as for prim_kruskal.Compute.
func (d *Dig) Solve(opts ...prim_kruskal.Option) (*Plan, error) {
	edges, total, err := prim_kruskal.Compute(d.Edges, d.Vertices.Len(), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "backyard: %d cells, %d tunnels", d.Vertices.Len(), len(d.Edges))
	}

	return &Plan{Edges: edges, Total: total}, nil
}

// Write renders p: the total cost, a blank line, then one "(r,c) (r,c)" line per tunnel.
func (d *Dig) Write(w io.Writer, p *Plan) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n\n", p.Total)
	for _, e := range p.Edges {
		ur, uc, err := d.Vertices.Cell(e.U)
		if err != nil {
			return errors.Wrapf(err, "backyard: tunnel %s", e)
		}
		vr, vc, err := d.Vertices.Cell(e.V)
		if err != nil {
			return errors.Wrapf(err, "backyard: tunnel %s", e)
		}
		fmt.Fprintf(bw, "(%d,%d) (%d,%d)\n", ur, uc, vr, vc)
	}

	return errors.Wrap(bw.Flush(), "backyard: write plan")
}
