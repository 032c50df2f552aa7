package trigram

import "log/slog"

// Loader ingests corpus files into Model and reports each outcome on Logger.
// Failures are local to the file: the model keeps whatever it held and the
// caller carries on.
type Loader struct {
	Model    *Model
	Encoding string
	Logger   *slog.Logger
}

// Result summarises one Load call.
type Result struct {
	Path     string
	Recorded int
	Err      error
}

func (r Result) OK() bool { return r.Err == nil }

func (l Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Load ingests one file.
func (l Loader) Load(path string) Result {
	log := l.logger()
	n, err := l.Model.IngestFile(path, WithEncoding(l.Encoding))
	res := Result{Path: path, Recorded: n, Err: err}
	if err != nil {
		log.Error("corpus load failed", "path", path, "recorded", n, "err", err)
		return res
	}
	log.Info("corpus loaded",
		"path", path,
		"recorded", n,
		"distinct", l.Model.Len(),
		"total", l.Model.Total(),
		"max", l.Model.Max(),
	)
	return res
}

// LoadAll ingests paths in order and returns one Result per path.
func (l Loader) LoadAll(paths []string) []Result {
	out := make([]Result, 0, len(paths))
	for _, p := range paths {
		out = append(out, l.Load(p))
	}
	return out
}
