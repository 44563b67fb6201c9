package shared

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/shirou/gopsutil/process"
)

// ErrAlreadyRunning is returned when another instance holds the lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

// InstanceLock keeps other instances of the app from starting while held.
type InstanceLock struct {
	lock    *flock.Flock
	pidPath string
}

// AcquireInstanceLock takes the lock in dir. When the lock is busy the error
// wraps ErrAlreadyRunning and names the owner's PID if it is still alive.
func AcquireInstanceLock(dir string) (*InstanceLock, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	lockPath := filepath.Join(dir, "filepickers.lock")
	pidPath := filepath.Join(dir, "filepickers.pid")

	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", lockPath, err)
	}
	if !locked {
		if pid, ok := runningOwner(pidPath); ok {
			log.Printf("Another instance is already running with PID %d", pid)
			return nil, fmt.Errorf("%w (PID %d)", ErrAlreadyRunning, pid)
		}
		return nil, ErrAlreadyRunning
	}

	if err := os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		log.Printf("Could not write PID file %s: %v", pidPath, err)
	}
	return &InstanceLock{lock: fl, pidPath: pidPath}, nil
}

// runningOwner reads the PID file and reports whether that process is alive.
func runningOwner(pidPath string) (int, bool) {
	data, err := os.ReadFile(pidPath)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		log.Printf("Ignoring unreadable PID file %s", pidPath)
		return 0, false
	}
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return 0, false
	}
	running, _ := proc.IsRunning()
	return pid, running
}

// Release frees the lock. It is safe to call more than once.
func (l *InstanceLock) Release() {
	if l == nil || l.lock == nil {
		return
	}
	os.Remove(l.pidPath)
	if err := l.lock.Unlock(); err != nil {
		log.Printf("Releasing instance lock: %v", err)
	}
	l.lock = nil
	log.Println("Released instance lock")
}
