package downloads

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"grabarr/internal/domain/consts"
	"grabarr/internal/models"
	"grabarr/internal/utils/logging"

	"github.com/alessio/shellescape"
)

// outputTailLines bounds how much terminal output is kept around for
// failure classification.
const outputTailLines = 200

// attemptResult captures one fetcher invocation.
type attemptResult struct {
	path   string
	output string
	err    error
}

// scanState is what the output parser hands back once the fetcher's
// stream ends.
type scanState struct {
	path   string
	output string
}

// execute runs one fetcher invocation to completion, streaming terminal
// output while keeping a bounded tail and watching for the landed file
// path.
func execute(ctx context.Context, spec models.InvocationSpec) attemptResult {
	args := FetcherArgs(spec)
	cmd := exec.CommandContext(ctx, consts.BinFetcher, args...)

	// Set process group to allow killing child processes (e.g. the transcoder)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}

	logging.D(1, "Built fetcher command for URL %q:\n%s %s", spec.URL, consts.BinFetcher, shellescape.QuoteCommand(args))

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return attemptResult{err: fmt.Errorf("stdout pipe error: %w", err)}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return attemptResult{err: fmt.Errorf("stderr pipe error: %w", err)}
	}

	lineChan := make(chan string, 100)
	scanChan := make(chan scanState, 1)

	if err := cmd.Start(); err != nil {
		return attemptResult{err: fmt.Errorf("failed to start fetcher: %w", err)}
	}

	// Merge stdout and stderr into lineChan
	go func() {
		defer close(lineChan)
		scanner := bufio.NewScanner(io.MultiReader(stdout, stderr))
		for scanner.Scan() {
			select {
			case lineChan <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	go scanFetcherOutput(lineChan, scanChan)

	scan := <-scanChan
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return attemptResult{output: scan.output, err: ctx.Err()}
	}
	if waitErr != nil {
		return attemptResult{output: scan.output, err: fmt.Errorf("fetcher failed: %w", waitErr)}
	}

	// Ensure the landed file is fully written
	if scan.path != "" {
		if err := waitForFile(scan.path, consts.FileWaitTimeout); err != nil {
			return attemptResult{path: scan.path, output: scan.output, err: err}
		}
	}
	return attemptResult{path: scan.path, output: scan.output}
}

// scanFetcherOutput consumes merged terminal output, keeping a bounded
// tail and capturing the landed file path when the fetcher prints it.
func scanFetcherOutput(lineChan <-chan string, scanChan chan<- scanState) {
	var (
		tail []string
		path string
	)
	for line := range lineChan {
		if line != "" {
			logging.D(4, "Fetcher terminal output: %q", line)
		}

		tail = append(tail, line)
		if len(tail) > outputTailLines {
			tail = tail[1:]
		}

		// Detect landed filename
		if path == "" && strings.HasPrefix(line, "/") && hasMediaExt(line) {
			path = line
		}
	}
	scanChan <- scanState{path: path, output: strings.Join(tail, "\n")}
}

// hasMediaExt reports whether the path ends in a known media extension.
func hasMediaExt(path string) bool {
	ext := filepath.Ext(path)
	for _, validExt := range consts.AllVidExtensions {
		if ext == validExt {
			return true
		}
	}
	for _, validExt := range consts.AllAudioExtensions {
		if ext == validExt {
			return true
		}
	}
	return false
}

// waitForFile waits until the file is ready in the file system.
func waitForFile(path string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil { // err IS nil
			return nil
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("unexpected error while checking file: %w", err)
		}
		time.Sleep(consts.FileCheckInterval)
	}
	return fmt.Errorf("file not ready after %v: %s", timeout, path)
}
