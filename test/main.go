package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/henderiw/rangeset/pkg/rangeset"
	"k8s.io/klog/v2"
)

const usage = `usage: %s [klog flags] word...

words:
  add FROM-TO     merge [FROM, TO) into the set
  delete FROM-TO  remove [FROM, TO) from the set
  query FROM-TO   print the stored parts of [FROM, TO)
  has N           print whether N is stored
  dump            print the set
  vec             print the set as end, start pairs
`

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer klog.Flush()

	rs := rangeset.New[int](
		rangeset.WithName("cli"),
		rangeset.WithLogger(klog.Background()),
	)
	if err := run(rs, flag.Args()); err != nil {
		klog.ErrorS(err, "failed")
		klog.Flush()
		os.Exit(1)
	}
}

func run(rs *rangeset.Set[int], words []string) error {
	for len(words) > 0 {
		cmd := words[0]
		words = words[1:]

		switch cmd {
		case "dump":
			if err := rs.Dump(os.Stdout); err != nil {
				return err
			}
			continue
		case "vec":
			fmt.Println(rs.ToVec())
			continue
		case "add", "delete", "query", "has":
		default:
			return fmt.Errorf("unknown word %q", cmd)
		}

		if len(words) == 0 {
			return fmt.Errorf("%s needs an argument", cmd)
		}
		arg := words[0]
		words = words[1:]

		if cmd == "has" {
			var v int
			if _, err := fmt.Sscan(arg, &v); err != nil {
				return fmt.Errorf("invalid value %q: %w", arg, err)
			}
			fmt.Println(v, rs.Contains(v))
			continue
		}

		r, err := rangeset.ParseRange[int](arg)
		if err != nil {
			return err
		}
		switch cmd {
		case "add":
			err = rs.Add(r.From(), r.To())
		case "delete":
			err = rs.Delete(r.From(), r.To())
		case "query":
			var got []rangeset.Range[int]
			got, err = rs.Query(r.From(), r.To())
			if err == nil {
				fmt.Println(got)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
