package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/mininlp/mininlp/internal/backend/cpu"
	"github.com/mininlp/mininlp/internal/nn"
)

type backend = *cpu.CPUBackend

// mlpFlags are the flags shared by params and summary.
type mlpFlags struct {
	layers string
	freeze string
	noBias bool
}

func (f *mlpFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.layers, "layers", "768,256,2", "Comma-separated layer widths, input first.")
	fs.StringVar(&f.freeze, "freeze", "", "Comma-separated indices of Linear layers to freeze.")
	fs.BoolVar(&f.noBias, "no-bias", false, "Build Linear layers without bias.")
}

// parseInts parses a comma-separated list of non-negative integers.
func parseInts(list string) ([]int, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var values []int
	for _, part := range strings.Split(list, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid integer %q", part)
		}
		if v < 0 {
			return nil, errors.Errorf("negative value %d", v)
		}
		values = append(values, v)
	}
	return values, nil
}

// buildMLP builds Linear layers of the given widths separated by ReLU, and
// freezes the Linear layers whose index (counting Linear layers only) is
// listed in freeze.
func buildMLP(b backend, widths, freeze []int, bias bool) (*nn.Sequential[backend], error) {
	if len(widths) < 2 {
		return nil, errors.Errorf("need at least 2 layer widths, got %v", widths)
	}
	for _, w := range widths {
		if w == 0 {
			return nil, errors.Errorf("layer widths must be positive, got %v", widths)
		}
	}
	numLinear := len(widths) - 1
	frozen := make(map[int]bool, len(freeze))
	for _, idx := range freeze {
		if idx >= numLinear {
			return nil, errors.Errorf("cannot freeze layer %d: model has %d Linear layers", idx, numLinear)
		}
		frozen[idx] = true
	}

	model := nn.NewSequential[backend]()
	for i := 0; i < numLinear; i++ {
		var layer *nn.Linear[backend]
		if bias {
			layer = nn.NewLinear(widths[i], widths[i+1], b)
		} else {
			layer = nn.NewLinearNoBias(widths[i], widths[i+1], b)
		}
		if frozen[i] {
			nn.Freeze[backend](layer)
		}
		model.Add(layer)
		if i < numLinear-1 {
			model.Add(nn.NewReLU[backend]())
		}
	}
	return model, nil
}

func (f *mlpFlags) build() (*nn.Sequential[backend], error) {
	widths, err := parseInts(f.layers)
	if err != nil {
		return nil, errors.WithMessage(err, "-layers")
	}
	freeze, err := parseInts(f.freeze)
	if err != nil {
		return nil, errors.WithMessage(err, "-freeze")
	}
	klog.V(1).Infof("Building MLP with widths %v, frozen Linear layers %v", widths, freeze)
	return buildMLP(cpu.New(), widths, freeze, !f.noBias)
}

func runParams(args []string) error {
	var f mlpFlags
	fs := newFlagSet("params")
	f.register(fs)
	_ = fs.Parse(args)

	model, err := f.build()
	if err != nil {
		return err
	}
	trainable := nn.CountParameters[backend](model)
	total := nn.CountAllParameters[backend](model)
	fmt.Printf("trainable parameters: %s\n", humanize.Comma(int64(trainable)))
	fmt.Printf("total parameters:     %s\n", humanize.Comma(int64(total)))
	return nil
}

var (
	headerStyle  = lipgloss.NewStyle().Reverse(true).Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).PaddingLeft(1).PaddingRight(1)
)

func newTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			switch {
			case row == lgtable.HeaderRow:
				return headerStyle
			case row%2 == 0:
				s = evenRowStyle
			default:
				s = oddRowStyle
			}
			if col == 0 || col >= 3 {
				s = s.Align(lipgloss.Right)
			}
			return
		})
}

// summaryRows renders one table row per parameter, named by its Linear
// layer position in the Sequential.
func summaryRows(model *nn.Sequential[backend]) [][]string {
	var rows [][]string
	for i := 0; i < model.Len(); i++ {
		for _, info := range nn.Summarize[backend](model.Module(i)) {
			trainable := "no"
			if info.Trainable {
				trainable = "yes"
			}
			rows = append(rows, []string{
				strconv.Itoa(len(rows)),
				fmt.Sprintf("%d.%s", i, info.Name),
				fmt.Sprint(info.Shape),
				humanize.Comma(int64(info.NumElements)),
				trainable,
			})
		}
	}
	return rows
}

func runSummary(args []string) error {
	var f mlpFlags
	fs := newFlagSet("summary")
	f.register(fs)
	_ = fs.Parse(args)

	model, err := f.build()
	if err != nil {
		return err
	}
	table := newTable().Headers("#", "Parameter", "Shape", "Size", "Trainable")
	for _, row := range summaryRows(model) {
		table.Row(row...)
	}
	fmt.Fprintln(os.Stdout, table.Render())
	fmt.Printf("trainable: %s / %s\n",
		humanize.Comma(int64(nn.CountParameters[backend](model))),
		humanize.Comma(int64(nn.CountAllParameters[backend](model))))
	return nil
}
