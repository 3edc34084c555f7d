package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// pidFile holds the server's PID on disk for the lifetime of the process
type pidFile struct {
	path   string
	file   *os.File
	locked bool
}

// writePIDFile records the current PID at path. With lock set, a live
// process named by an existing file is an error and the file is flocked.
// The returned func removes the file.
func writePIDFile(path string, lock bool) (func(), error) {
	p := &pidFile{path: path}
	if err := p.open(lock); err != nil {
		return nil, err
	}
	if err := p.write(); err != nil {
		p.release()
		return nil, err
	}
	return p.release, nil
}

func (p *pidFile) open(lock bool) error {
	f, err := os.OpenFile(p.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	switch {
	case err == nil:
	case !os.IsExist(err):
		return fmt.Errorf("cannot create PID file: %w", err)
	default:
		if lock {
			if err := checkStale(p.path); err != nil {
				return err
			}
		}
		if f, err = os.OpenFile(p.path, os.O_WRONLY|os.O_TRUNC, 0644); err != nil {
			return fmt.Errorf("cannot open PID file: %w", err)
		}
	}
	p.file = f

	if !lock {
		return nil
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) {
			return fmt.Errorf("cannot acquire lock: another server is running")
		}
		return fmt.Errorf("lock failed: %w", err)
	}
	p.locked = true
	return nil
}

func (p *pidFile) write() error {
	if _, err := fmt.Fprintf(p.file, "%d\n", os.Getpid()); err != nil {
		return fmt.Errorf("cannot write PID: %w", err)
	}
	if err := p.file.Sync(); err != nil {
		return fmt.Errorf("cannot sync PID file: %w", err)
	}
	return nil
}

func (p *pidFile) release() {
	if p.locked {
		syscall.Flock(int(p.file.Fd()), syscall.LOCK_UN)
	}
	p.file.Close()
	os.Remove(p.path)
}

// checkStale returns nil when the PID in path no longer names a process
func checkStale(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read existing PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("corrupted PID file (contains: %q)", string(data))
	}

	// signal 0 only probes for existence
	proc, _ := os.FindProcess(pid)
	err = proc.Signal(syscall.Signal(0))
	switch {
	case err == nil:
		return fmt.Errorf("PID file %s belongs to running process %d", path, pid)
	case errors.Is(err, os.ErrProcessDone), errors.Is(err, syscall.ESRCH):
		return nil
	default:
		return fmt.Errorf("process %d exists but cannot be checked: %v", pid, err)
	}
}
