// Package assets fetches and parses the glTF model shown by the viewer.
//
// Loading runs on a background goroutine. Every callback is handed to a
// Poster and therefore runs on whichever goroutine drains it, normally the
// main loop, so callbacks may touch the scene graph freely.
package assets

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/Faultbox/showcase/internal/engine/scene"
	"github.com/Faultbox/showcase/internal/logger"
)

// Poster queues a task for the main goroutine. frame.Scheduler implements it.
type Poster interface {
	Post(task func())
}

// Progress reports bytes fetched so far. Total is 0 when the size is
// unknown.
type Progress struct {
	Loaded int64
	Total  int64
}

// Percent returns Loaded as a percentage of Total, or 0 when Total is
// unknown.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Loaded) / float64(p.Total) * 100
}

// Callbacks receive the outcome of a Load. Any of them may be nil.
// OnProgress may fire many times; exactly one of OnLoad and OnError fires.
type Callbacks struct {
	OnProgress func(Progress)
	OnLoad     func(*scene.Node)
	OnError    func(*LoadError)
}

// Loader loads glTF and GLB files.
type Loader struct {
	poster Poster
	log    *zap.Logger

	wg sync.WaitGroup
}

// NewLoader creates a loader that delivers callbacks through p.
func NewLoader(p Poster) *Loader {
	return &Loader{
		poster: p,
		log:    logger.Named("assets"),
	}
}

// Load starts fetching path in the background and returns immediately.
func (l *Loader) Load(path string, cb Callbacks) {
	l.log.Debug("loading model", zap.String("path", path))

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		root, err := l.load(path, cb)
		if err != nil {
			le := newLoadError(err)
			l.poster.Post(func() {
				if cb.OnError != nil {
					cb.OnError(le)
				}
			})
			return
		}
		l.poster.Post(func() {
			if cb.OnLoad != nil {
				cb.OnLoad(root)
			}
		})
	}()
}

// Wait blocks until every started Load has posted its outcome.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) load(path string, cb Callbacks) (*scene.Node, error) {
	data, err := l.fetch(path, cb.OnProgress)
	if err != nil {
		return nil, err
	}

	doc := new(gltf.Document)
	dec := gltf.NewDecoderFS(bytes.NewReader(data), os.DirFS(filepath.Dir(path)))
	if err := dec.Decode(doc); err != nil {
		return nil, withKind(ErrParse, errors.Wrapf(err, "decode %s", filepath.Base(path)))
	}

	root, err := Convert(doc)
	if err != nil {
		return nil, err
	}
	root.Name = filepath.Base(path)
	return root, nil
}

func (l *Loader) fetch(path string, onProgress func(Progress)) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open model")
	}
	defer f.Close()

	var total int64
	if info, err := f.Stat(); err == nil {
		total = info.Size()
	}

	var buf bytes.Buffer
	if total > 0 {
		buf.Grow(int(total))
	}
	pr := &progressReader{r: f, total: total, report: func(p Progress) {
		if onProgress != nil {
			l.poster.Post(func() { onProgress(p) })
		}
	}}
	if _, err := io.Copy(&buf, pr); err != nil {
		return nil, errors.Wrap(err, "read model")
	}
	return buf.Bytes(), nil
}

// progressReader reports the running byte count after every read.
type progressReader struct {
	r      io.Reader
	loaded int64
	total  int64
	report func(Progress)
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 {
		pr.loaded += int64(n)
		pr.report(Progress{Loaded: pr.loaded, Total: pr.total})
	}
	return n, err
}

// ResolvePath resolves rel against the directory base, the way a page
// resolves a relative URL against its own location. Absolute paths are
// returned cleaned but otherwise unchanged.
func ResolvePath(base, rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	if base == "" {
		base = "."
	}
	return filepath.Join(base, filepath.FromSlash(rel))
}
