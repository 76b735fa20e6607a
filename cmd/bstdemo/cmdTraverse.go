package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/google/subcommands"

	"github.com/g-m-twostay/go-bst/Trees"
)

type cmdTraverse struct {
	out    io.Writer
	logger *log.Logger

	values intList
	order  string
}

func (cmd *cmdTraverse) Name() string     { return "traverse" }
func (cmd *cmdTraverse) Synopsis() string { return "print the in, pre and post order of a tree" }
func (cmd *cmdTraverse) Usage() string {
	return "traverse [-values 3,1,5,2,4] [-order all|in|pre|post]\n"
}

func (cmd *cmdTraverse) SetFlags(f *flag.FlagSet) {
	cmd.values = defaultValues()
	f.Var(&cmd.values, "values", "comma separated values inserted in order")
	f.StringVar(&cmd.order, "order", "all", "traversal to print: all, in, pre or post")
}

func (cmd *cmdTraverse) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	var in, pre, post bool
	switch cmd.order {
	case "all":
		in, pre, post = true, true, true
	case "in":
		in = true
	case "pre":
		pre = true
	case "post":
		post = true
	default:
		cmd.logger.Println("unknown order:", cmd.order)
		return subcommands.ExitUsageError
	}
	tree := build(cmd.values, cmd.logger)
	if in {
		fmt.Fprintln(cmd.out, "inorder: "+tree.String())
	}
	if pre {
		fmt.Fprintln(cmd.out, "pre order:"+tree.PreOrder(tree.Root(), Trees.DefaultVisitor[int]))
	}
	if post {
		fmt.Fprintln(cmd.out, "post order:"+tree.PostOrder(tree.Root(), Trees.DefaultVisitor[int]))
	}
	return subcommands.ExitSuccess
}
