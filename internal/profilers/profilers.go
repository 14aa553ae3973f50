// Package profilers sets up CPU, heap and HTTP (pprof) profiling for the command-line programs,
// useful to measure the territory engine during long tournaments.
//
// If linked, it installs the flags -prof, -cpu_profile and -mem_profile.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
)

var (
	flagProfiler   = flag.Int("prof", -1, "If set, serves pprof's HTTP profiler on the given localhost port.")
	flagCPUProfile = flag.String("cpu_profile", "", "Write CPU profile to `file`.")
	flagMemProfile = flag.String("mem_profile", "", "Write heap profile to `file` on exit.")
)

// Profilers holds the state of the configured profilers. The zero value has no profiler enabled.
type Profilers struct {
	ctx                  context.Context
	httpAddr             string
	cpuFile              *os.File
	cpuPath, memPath     string
	keepAliveWithProfile bool
}

// Setup starts the profilers configured by the flags. Follow it with a deferred call to OnQuit.
func Setup(ctx context.Context) (*Profilers, error) {
	return New(ctx, *flagProfiler, *flagCPUProfile, *flagMemProfile)
}

// New starts the profilers: httpPort < 0 disables the HTTP profiler, empty paths disable the
// file profiles.
func New(ctx context.Context, httpPort int, cpuPath, memPath string) (*Profilers, error) {
	p := &Profilers{ctx: ctx, cpuPath: cpuPath, memPath: memPath}
	if cpuPath != "" {
		f, err := os.Create(cpuPath)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create CPU profile %q", cpuPath)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, errors.Wrap(err, "could not start CPU profile")
		}
		p.cpuFile = f
	}
	if httpPort >= 0 {
		p.httpAddr = fmt.Sprintf("localhost:%d", httpPort)
		p.keepAliveWithProfile = true
		fmt.Printf("Starting profiler on %s/debug/pprof\n", p.httpAddr)
		fmt.Printf("- You can access it with: $ go tool pprof %s/debug/pprof/heap\n", p.httpAddr)
		go func() {
			klog.Errorf("HTTP profiler stopped: %v", http.ListenAndServe(p.httpAddr, nil))
		}()
	}
	return p, nil
}

// OnQuit stops the CPU profile and writes the heap profile. If the HTTP profiler is enabled, it keeps
// the program alive until the context given to Setup is done.
func (p *Profilers) OnQuit() {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); err != nil {
			klog.Errorf("Failed to close CPU profile %q: %v", p.cpuPath, err)
		}
		p.cpuFile = nil
	}
	if p.memPath != "" {
		if err := p.writeHeapProfile(); err != nil {
			klog.Errorf("%+v", err)
		}
	}
	if !p.keepAliveWithProfile || p.ctx.Err() != nil {
		return
	}
	// Garbage collect, to see if there is anything leaking.
	for range 10 {
		runtime.GC()
	}
	fmt.Printf("- Program finished: kept alive with profiler opened at %s/debug/pprof\n", p.httpAddr)
	fmt.Printf("- Interrupt (Ctrl+C) to exit\n")
	<-p.ctx.Done()
}

func (p *Profilers) writeHeapProfile() error {
	f, err := os.Create(p.memPath)
	if err != nil {
		return errors.Wrapf(err, "could not create heap profile %q", p.memPath)
	}
	defer func() { _ = f.Close() }()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return errors.Wrapf(err, "could not write heap profile %q", p.memPath)
	}
	return nil
}
