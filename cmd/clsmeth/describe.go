package main

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/gad-lang/clsmeth"
	"github.com/gad-lang/clsmeth/scenario"
	"github.com/gad-lang/clsmeth/typeexpr"
)

func (a *app) describe(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.stderr, "describe: missing type expression")
		return 2
	}
	for _, src := range args {
		d, err := typeexpr.Parse(src, scenario.Consts)
		if err != nil {
			a.parseError(src, err)
			return 1
		}
		fmt.Fprint(a.stdout, DescriptorTree(d))
	}
	return 0
}

// DescriptorTree renders d and its components as a tree.
func DescriptorTree(d clsmeth.Descriptor) string {
	tree := treeprint.NewWithRoot(d.String())
	addDescriptor(tree, d)
	return tree.String()
}

func addDescriptor(tree treeprint.Tree, d clsmeth.Descriptor) {
	switch t := d.(type) {
	case clsmeth.Shape:
		for _, f := range t.Fields() {
			label := "[" + clsmeth.ToCode(f.Key) + "]"
			if f.Optional {
				label = "?" + label
			}
			addChild(tree, label+" "+f.Type.String(), f.Type)
		}
		if t.Open {
			tree.AddNode("...")
		}
	case clsmeth.Tuple:
		for i, e := range t.Elems() {
			addChild(tree, fmt.Sprintf("#%d %s", i, e), e)
		}
	case clsmeth.Nullable:
		tree.AddNode("null")
		addChild(tree, t.Inner.String(), t.Inner)
	}
}

func addChild(tree treeprint.Tree, label string, d clsmeth.Descriptor) {
	switch d.(type) {
	case clsmeth.Shape, clsmeth.Tuple, clsmeth.Nullable:
		addDescriptor(tree.AddBranch(label), d)
	default:
		tree.AddNode(label)
	}
}
