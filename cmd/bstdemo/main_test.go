package main

import (
	"bytes"
	"context"
	"flag"
	"log"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cmd subcommands.Command, args ...string) (subcommands.ExitStatus, string, string) {
	t.Helper()
	var out, logs bytes.Buffer
	switch c := cmd.(type) {
	case *cmdTraverse:
		c.out, c.logger = &out, log.New(&logs, "", 0)
	case *cmdShape:
		c.out, c.logger = &out, log.New(&logs, "", 0)
	}
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return cmd.Execute(context.Background(), f), out.String(), logs.String()
}

func TestTraverse_Default(t *testing.T) {
	status, out, logs := run(t, &cmdTraverse{})
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Empty(t, logs)
	assert.Equal(t,
		"inorder: \t1(1)\t\t2(2)\t\t3(0)\t\t4(2)\t\t5(1)\t\n"+
			"pre order:\t3(0)\t\t1(1)\t\t2(2)\t\t5(1)\t\t4(2)\t\n"+
			"post order:\t2(2)\t\t1(1)\t\t4(2)\t\t5(1)\t\t3(0)\t\n",
		out)
}

func TestTraverse_Order(t *testing.T) {
	status, out, _ := run(t, &cmdTraverse{}, "-values", "2,1,3", "-order", "post")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "post order:\t1(1)\t\t3(1)\t\t2(0)\t\n", out)

	status, out, logs := run(t, &cmdTraverse{}, "-order", "level")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Empty(t, out)
	assert.Contains(t, logs, "unknown order: level")
}

func TestTraverse_Duplicates(t *testing.T) {
	status, out, logs := run(t, &cmdTraverse{}, "-values", "2, 2,1", "-order", "in")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "inorder: \t1(1)\t\t2(0)\t\n", out)
	assert.Contains(t, logs, "skipping duplicate value 2")
}

func TestTraverse_Empty(t *testing.T) {
	status, out, _ := run(t, &cmdTraverse{}, "-values", "")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "inorder: \npre order:\npost order:\n", out)
}

func TestShape(t *testing.T) {
	status, out, _ := run(t, &cmdShape{})
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "3(0)\n  1(1)\n    2(2)\n  5(1)\n    4(2)\nheight: 2 size: 5\n", out)
}

func TestIntList(t *testing.T) {
	var l intList
	require.NoError(t, l.Set(" 4, -1,,9"))
	assert.Equal(t, intList{4, -1, 9}, l)
	assert.Equal(t, "4,-1,9", l.String())
	assert.Error(t, l.Set("1,x"))
}
