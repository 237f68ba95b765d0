package seqcmd

import (
	"strconv"

	"go.brendoncarroll.net/star"

	"myceliumweb.org/seqvec"
	"myceliumweb.org/seqvec/seqss"
)

var set = star.Command{
	Metadata: star.Metadata{
		Short: "store a sequence under a name",
		Tags:  []string{"seq"},
	},
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{nameParam, elemsParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		name := nameParam.Load(c)
		s := seqvec.Of(elemsParam.LoadAll(c)...)
		if err := seqss.Put(c.Context, db, name, s); err != nil {
			return err
		}
		c.Printf("%s = %v\n", name, s)
		return nil
	},
}

var show = star.Command{
	Metadata: star.Metadata{
		Short: "print a stored sequence",
		Tags:  []string{"seq"},
	},
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{nameParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		s, err := seqss.Get(c.Context, db, nameParam.Load(c))
		if err != nil {
			return err
		}
		c.Printf("%v\n", s)
		return nil
	},
}

var list = star.Command{
	Metadata: star.Metadata{
		Short: "list the stored sequences",
		Tags:  []string{"seq"},
	},
	Flags: []star.IParam{DBParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		names, err := seqss.List(c.Context, db)
		if err != nil {
			return err
		}
		c.Printf("NAME\tLEN\n")
		for _, name := range names {
			s, err := seqss.Get(c.Context, db, name)
			if err != nil {
				return err
			}
			c.Printf("%s\t%d\n", name, s.Len())
		}
		return nil
	},
}

var drop = star.Command{
	Metadata: star.Metadata{
		Short: "remove a stored sequence",
		Tags:  []string{"seq"},
	},
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{nameParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		return seqss.Drop(c.Context, db, nameParam.Load(c))
	},
}

var nameParam = star.Param[string]{Name: "name", Parse: star.ParseString}

var elemsParam = star.Param[int64]{
	Name:     "elems",
	Repeated: true,
	Parse: func(x string) (int64, error) {
		return strconv.ParseInt(x, 10, 64)
	},
}
