package clsmeth

import (
	"io"
	"strconv"
	"strings"
)

// Dump writes the var_dump rendering of o to w.
func Dump(w io.Writer, o Object) error {
	var sb strings.Builder
	dump(&sb, o, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

// DumpString returns the var_dump rendering of o.
func DumpString(o Object) string {
	var sb strings.Builder
	dump(&sb, o, 0)
	return sb.String()
}

func dump(sb *strings.Builder, o Object, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)

	switch v := o.(type) {
	case nil, *NilType:
		sb.WriteString("NULL\n")
	case Bool:
		sb.WriteString("bool(" + v.ToString() + ")\n")
	case Int:
		sb.WriteString("int(" + v.ToString() + ")\n")
	case Float:
		sb.WriteString("float(" + v.ToString() + ")\n")
	case Decimal:
		sb.WriteString("decimal(" + v.ToString() + ")\n")
	case Str:
		sb.WriteString("string(" + strconv.Itoa(len(v)) + ") \"" + string(v) + "\"\n")
	case *Array:
		dumpEntries(sb, TArray.Name(), v.Iterate(), v.Length(), depth)
	case *pairView:
		dumpEntries(sb, TArray.Name(), v.Iterate(), v.Length(), depth)
	case *Dict:
		dumpEntries(sb, TDict.Name(), v.Iterate(), v.Length(), depth)
	case *Pair:
		sb.WriteString(TClsMeth.Name() + "(" + v.first.ToString() + "::" + v.second.ToString() + ")\n")
	case *Obj:
		sb.WriteString("object(" + v.class.Name() + ")\n")
	default:
		sb.WriteString(v.Type().Name() + "(" + v.ToString() + ")\n")
	}
}

func dumpEntries(sb *strings.Builder, name string, it Iterator, n, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(name + "(" + strconv.Itoa(n) + ") {\n")
	for it.Next() {
		sb.WriteString(indent + "  [" + dumpKey(it.Key()) + "]=>\n")
		dump(sb, it.Value(), depth+1)
	}
	sb.WriteString(indent + "}\n")
}

// dumpKey writes string keys unescaped, as var_dump does.
func dumpKey(k Object) string {
	if s, ok := k.(Str); ok {
		return `"` + string(s) + `"`
	}
	return k.ToString()
}
