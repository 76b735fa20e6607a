package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/subcommands"

	"github.com/g-m-twostay/go-bst/Trees"
)

type cmdShape struct {
	out    io.Writer
	logger *log.Logger

	values intList
}

func (cmd *cmdShape) Name() string     { return "shape" }
func (cmd *cmdShape) Synopsis() string { return "print a tree one node per line, indented by level" }
func (cmd *cmdShape) Usage() string    { return "shape [-values 3,1,5,2,4]\n" }

func (cmd *cmdShape) SetFlags(f *flag.FlagSet) {
	cmd.values = defaultValues()
	f.Var(&cmd.values, "values", "comma separated values inserted in order")
}

func (cmd *cmdShape) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	tree := build(cmd.values, cmd.logger)
	fmt.Fprint(cmd.out, tree.PreOrder(tree.Root(), func(n *Trees.Node[int]) string {
		return fmt.Sprintf("%s%d(%d)\n", strings.Repeat("  ", int(n.Level())), n.Element(), n.Level())
	}))
	fmt.Fprintln(cmd.out, "height:", tree.Height(), "size:", tree.Size())
	return subcommands.ExitSuccess
}
