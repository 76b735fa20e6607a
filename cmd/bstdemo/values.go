package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
)

// intList is a comma separated list of ints given as a flag.
type intList []int

func (l *intList) String() string {
	s := make([]string, len(*l))
	for i, v := range *l {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}

func (l *intList) Set(s string) error {
	var vs intList
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("bad value %q: %w", f, err)
		}
		vs = append(vs, v)
	}
	*l = vs
	return nil
}

func defaultValues() intList {
	return intList{3, 1, 5, 2, 4}
}

// build inserts vs in order, logging the ones already present.
func build(vs intList, logger *log.Logger) *Trees.BSTree[int] {
	tree := Trees.New[int]()
	for _, v := range vs {
		if !tree.Insert(v) {
			logger.Println("skipping duplicate value", v)
		}
	}
	return tree
}
