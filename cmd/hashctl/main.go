// Command hashctl is a small terminal tool for exercising the three
// core engines (IntSet, Dict, HashObject) by hand, the same role
// m.go played for the teacher's hashmap package.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kirillDanshin/dlog"
	"github.com/urfave/cli/v2"

	"github.com/jifukui/redis/dict"
	"github.com/jifukui/redis/hashobj"
	"github.com/jifukui/redis/hcconfig"
	"github.com/jifukui/redis/intset"
)

func main() {
	app := &cli.App{
		Name:  "hashctl",
		Usage: "poke at the intset/dict/hashobj engines from a terminal",
		Commands: []*cli.Command{
			newCmdIntset(),
			newCmdDict(),
			newCmdHashobj(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("error: %s", err)
	}
}

func newCmdIntset() *cli.Command {
	return &cli.Command{
		Name:  "intset",
		Usage: "add a handful of integers and print the resulting encoding",
		Flags: []cli.Flag{
			&cli.Int64SliceFlag{Name: "value", Aliases: []string{"v"}, Usage: "value to add (repeatable)"},
		},
		Action: func(c *cli.Context) error {
			s := intset.New()
			for _, v := range c.Int64Slice("value") {
				s.Add(v)
			}
			dlog.D(fmt.Sprintf("encoding=%d len=%d blob_size=%d", s.Encoding(), s.Len(), s.BlobSize()))
			for i := uint32(0); i < s.Len(); i++ {
				v, _ := s.Get(i)
				dlog.D(v)
			}
			return nil
		},
	}
}

func newCmdDict() *cli.Command {
	return &cli.Command{
		Name:  "dict",
		Usage: "insert N string keys and report table shape",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 1000},
		},
		Action: func(c *cli.Context) error {
			n := c.Int("count")
			d := dict.New(&dict.Type{
				Hash: func(key interface{}) uint64 { return dict.HashString([16]byte{}, key.(string)) },
			})
			for i := 0; i < n; i++ {
				d.Add(fmt.Sprintf("key-%d", i), i)
			}
			d.TimedRehash(0)
			st := d.Stats()
			dlog.D(fmt.Sprintf("table0=%d/%d table1=%d/%d rehashidx=%d",
				st.Table0Used, st.Table0Size, st.Table1Used, st.Table1Size, st.RehashIdx))
			return nil
		},
	}
}

func newCmdHashobj() *cli.Command {
	return &cli.Command{
		Name:  "hashobj",
		Usage: "set a few fields and print the representation",
		Action: func(c *cli.Context) error {
			h := hashobj.New(hcconfig.New())
			for _, arg := range c.Args().Slice() {
				h.Set([]byte(arg), []byte(arg), 0)
			}
			dlog.D(fmt.Sprintf("representation=%s len=%d", h.Representation(), h.Len()))
			return nil
		},
	}
}
