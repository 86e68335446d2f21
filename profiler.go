package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	capturing       bool
	lastCapture     time.Time
	cooldown        time.Duration
	captureDuration time.Duration
	dir             string
}

// NewProfiler creates a profiler writing into ./profiles
func NewProfiler() *Profiler {
	return &Profiler{
		cooldown:        10 * time.Second,
		captureDuration: 5 * time.Second,
		dir:             "profiles",
	}
}

func fpsDropReason(fps float64) string {
	return fmt.Sprintf("fps%.0f", fps)
}

// CaptureProfile starts a background capture unless one is running or on cooldown
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.capturing {
		return fmt.Errorf("already profiling")
	}
	if since := time.Since(p.lastCapture); since < p.cooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since.Round(time.Second))
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.capturing = true
	p.lastCapture = time.Now()
	base := fmt.Sprintf("fps-drop-%s-%s", p.lastCapture.Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.capturing = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPU(base); err != nil {
				log.Printf("cpu profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(base); err != nil {
				log.Printf("trace: %v", err)
			}
		}()
		wg.Wait()

		p.summarize(base)
	}()
	return nil
}

// Capturing reports whether a capture is in progress
func (p *Profiler) Capturing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capturing
}

func (p *Profiler) captureCPU(base string) error {
	path := filepath.Join(p.dir, base+".cpu.prof")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("cpu profile saved to %s", path)
	return nil
}

func (p *Profiler) captureTrace(base string) error {
	path := filepath.Join(p.dir, base+".trace")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	log.Printf("trace saved to %s", path)
	return nil
}

// summarize logs where the capture went and the heap at the end of it
func (p *Profiler) summarize(base string) {
	path := filepath.Join(p.dir, base+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("profile summary: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profile %s (%.1f KB): go tool pprof -http=:8080 %s", base, float64(info.Size())/1024, path)
	log.Printf("heap alloc %d KB, sys %d KB, objects %d, gc cycles %d", m.Alloc/1024, m.Sys/1024, m.HeapObjects, m.NumGC)
}
