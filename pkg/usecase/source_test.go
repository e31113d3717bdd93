package usecase_test

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"sync"

	"github.com/m-mizutani/combine/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// fakeSource is an in-memory AssetSource that records every call
type fakeSource struct {
	files    map[string][]byte
	dirs     map[string]bool
	statErr  map[string]error
	openErr  map[string]error
	readErr  map[string]error
	chunk    map[string]int // max bytes returned per Read, 0 means unlimited
	statLog  []string
	openLog  []string
	open     int
	maxOpen  int
	maxReadP int
	mutex    sync.Mutex
}

func newFakeSource(files map[string]string) *fakeSource {
	src := &fakeSource{
		files:   map[string][]byte{},
		dirs:    map[string]bool{},
		statErr: map[string]error{},
		openErr: map[string]error{},
		readErr: map[string]error{},
		chunk:   map[string]int{},
	}
	for path, content := range files {
		src.files[path] = []byte(content)
	}
	return src
}

func (x *fakeSource) Name() string { return "fake" }

func (x *fakeSource) Stat(ctx context.Context, path string) (*model.AssetStat, error) {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.statLog = append(x.statLog, path)

	if err, ok := x.statErr[path]; ok {
		return nil, err
	}
	if x.dirs[path] {
		return &model.AssetStat{Regular: false}, nil
	}
	data, ok := x.files[path]
	if !ok {
		return nil, goerr.Wrap(fs.ErrNotExist, "no such file")
	}
	return &model.AssetStat{Size: int64(len(data)), Regular: true}, nil
}

func (x *fakeSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.openLog = append(x.openLog, path)

	if err, ok := x.openErr[path]; ok {
		return nil, err
	}
	data, ok := x.files[path]
	if !ok {
		return nil, goerr.Wrap(fs.ErrNotExist, "no such file")
	}

	x.open++
	if x.open > x.maxOpen {
		x.maxOpen = x.open
	}

	return &fakeReader{
		src:   x,
		r:     bytes.NewReader(data),
		err:   x.readErr[path],
		chunk: x.chunk[path],
	}, nil
}

func (x *fakeSource) stats() []string {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return append([]string{}, x.statLog...)
}

func (x *fakeSource) opens() []string {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return append([]string{}, x.openLog...)
}

type fakeReader struct {
	src    *fakeSource
	r      *bytes.Reader
	err    error
	chunk  int
	closed bool
}

func (x *fakeReader) Read(p []byte) (int, error) {
	x.src.mutex.Lock()
	if len(p) > x.src.maxReadP {
		x.src.maxReadP = len(p)
	}
	x.src.mutex.Unlock()

	if x.chunk > 0 && len(p) > x.chunk {
		p = p[:x.chunk]
	}
	n, err := x.r.Read(p)
	if err == io.EOF && x.err != nil {
		return n, x.err
	}
	return n, err
}

func (x *fakeReader) Close() error {
	x.src.mutex.Lock()
	defer x.src.mutex.Unlock()
	if !x.closed {
		x.closed = true
		x.src.open--
	}
	return nil
}
