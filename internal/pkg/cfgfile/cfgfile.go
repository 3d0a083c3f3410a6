package cfgfile

import (
	"github.com/ansel1/merry"
	"io/ioutil"
	"os"
	"path/filepath"
)

type MarshalFunc = func(in interface{}) (out []byte, err error)
type UnmarshalFunc = func(in []byte, out interface{}) error

// F is a file of serialized settings. Relative names resolve against dir,
// which is the executable's directory unless set with NewInDir.
type F struct {
	name      string
	dir       string
	marshal   MarshalFunc
	unmarshal UnmarshalFunc
}

func New(name string, marshal MarshalFunc, unmarshal UnmarshalFunc) *F {
	return NewInDir(filepath.Dir(os.Args[0]), name, marshal, unmarshal)
}

func NewInDir(dir, name string, marshal MarshalFunc, unmarshal UnmarshalFunc) *F {
	return &F{
		name:      name,
		dir:       dir,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

func (x *F) Set(in interface{}) error {
	data, err := x.marshal(in)
	if err != nil {
		return x.err(err)
	}
	if err := ioutil.WriteFile(x.Filename(), data, 0666); err != nil {
		return x.err(err)
	}
	return nil
}

func (x *F) Get(out interface{}) error {
	data, err := ioutil.ReadFile(x.Filename())
	if err != nil {
		return err
	}
	return x.err(x.unmarshal(data, out))
}

func (x *F) Exists() bool {
	_, err := os.Stat(x.Filename())
	return !os.IsNotExist(err)
}

func (x *F) err(err error) error {
	return merry.Append(err, x.name)
}

func (x *F) Filename() string {
	if filepath.IsAbs(x.name) {
		return x.name
	}
	return filepath.Join(x.dir, x.name)
}
