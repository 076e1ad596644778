package background

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chaos-io/transparentbg/util"
)

type Options struct {
	// Tolerance, see WhiteRemover.
	Tolerance int
	// ThumbnailSize > 0 also writes "<output stem>_thumb.png" whose longest
	// edge is at most ThumbnailSize. The main output is never resized.
	ThumbnailSize int
	// Out receives the progress lines.
	Out io.Writer
}

func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		Out:       os.Stdout,
	}
}

// Job is one input/output pair. Input may be a local path or an http(s) URL;
// the directory of Output must already exist.
type Job struct {
	Input  string
	Output string
}

type Result struct {
	Job

	Width, Height int

	// Transparent is the number of fully transparent pixels in the output.
	Transparent  int
	Thumbnail    string
	// ThumbnailErr is set when the preview could not be written. It does not
	// affect OK.
	ThumbnailErr error
	Elapsed      time.Duration
	Err          error
}

func (r Result) OK() bool { return r.Err == nil }

type Processor struct {
	RemBG BackgroundRemover
	opts  Options
}

func NewProcessor(opts ...func(*Options)) *Processor {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Out == nil {
		o.Out = io.Discard
	}
	return &Processor{
		RemBG: NewWhiteRemover(o.Tolerance),
		opts:  o,
	}
}

// Process runs a single job. Failures are printed and returned in Result.Err.
func (p *Processor) Process(ctx context.Context, job Job) Result {
	defer util.Trace("remove background " + job.Input)()

	start := time.Now()
	_, _ = fmt.Fprintf(p.opts.Out, "Processing %s...\n", job.Input)

	res := p.process(ctx, job)
	res.Elapsed = time.Since(start)
	if res.Err != nil {
		_, _ = fmt.Fprintf(p.opts.Out, "Error processing %s: %v\n", job.Input, res.Err)
		return res
	}

	slog.Debug("background removed",
		"input", job.Input, "output", job.Output,
		"width", res.Width, "height", res.Height,
		"transparent", res.Transparent, "elapsed", res.Elapsed)
	_, _ = fmt.Fprintf(p.opts.Out, "Successfully saved transparent image to %s\n", job.Output)
	return res
}

// ProcessAll runs jobs in order. A failed job does not stop the rest.
func (p *Processor) ProcessAll(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, p.Process(ctx, job))
	}
	return results
}

func (p *Processor) process(ctx context.Context, job Job) Result {
	res := Result{Job: job}

	src, err := util.LoadImage(ctx, job.Input)
	if err != nil {
		res.Err = fmt.Errorf("open image: %w", err)
		return res
	}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	nrgba := toNRGBA(src)
	slog.Debug("image loaded", "input", job.Input, "bounds", nrgba.Bounds())

	removed, err := p.RemBG.Remove(nrgba)
	if err != nil {
		res.Err = fmt.Errorf("remove background: %w", err)
		return res
	}
	out := toNRGBA(removed)
	res.Width, res.Height = out.Bounds().Dx(), out.Bounds().Dy()
	res.Transparent = countTransparent(out)

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	if err := util.SaveImage(job.Output, out); err != nil {
		res.Err = fmt.Errorf("save image: %w", err)
		return res
	}

	if p.opts.ThumbnailSize > 0 {
		res.Thumbnail = thumbnailPath(job.Output)
		if err := util.SaveImage(res.Thumbnail, resizeWithinMax(out, p.opts.ThumbnailSize)); err != nil {
			// the main output is complete; a missing preview does not fail the job
			res.ThumbnailErr = fmt.Errorf("save thumbnail: %w", err)
			slog.Warn("thumbnail not saved", "output", job.Output, "thumbnail", res.Thumbnail, "err", err)
		}
	}

	return res
}

func thumbnailPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + "_thumb.png"
}

// RemoveWhiteBackground makes near-white pixels of input transparent and
// writes the result to output as PNG, reporting progress on stdout.
func RemoveWhiteBackground(ctx context.Context, input, output string, tolerance int) Result {
	p := NewProcessor(func(o *Options) {
		o.Tolerance = tolerance
	})
	return p.Process(ctx, Job{Input: input, Output: output})
}
