// Package session drives the interactive browse loop: pick a directory,
// pick a file, pick a dataset, load it, visualize it, repeat until the
// user quits.
package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hdfscope/internal/catalog"
	"hdfscope/internal/config"
	"hdfscope/internal/dataset"
	"hdfscope/internal/errors"
	"hdfscope/internal/log"
	"hdfscope/internal/scan"
	"hdfscope/internal/store"
	"hdfscope/pkg/types"
)

// ExitToken quits the session from the directory prompt.
const ExitToken = "exit"

// state is the controller's position in the browse loop.
type state int

const (
	stateChooseDirectory state = iota
	stateChooseFile
	stateExploreFile
	stateLoaded
	stateExit
)

// Visualizer consumes a loaded dataset and produces terminal output.
// Failures are reported and never terminate the session.
type Visualizer interface {
	Render(d *types.LoadedDataset) (string, error)
}

// Controller owns all session state. It is single-threaded and strictly
// sequential: each state runs to completion, suspending only on user
// input at a state boundary.
type Controller struct {
	cfg  *config.Config
	open store.Opener
	viz  Visualizer
	in   *bufio.Scanner
	out  io.Writer

	state    state
	dir      string
	patterns []string
	files    []string

	// Per-file exploration state. file and cat are non-nil exactly while
	// the controller is between ExploreFile entry and the transition back
	// to ChooseFile, and the handle is closed on every path out.
	file    store.File
	cat     *catalog.Catalog
	pending string // resolved dataset path awaiting load
}

// New creates a session controller. dir may be empty, in which case the
// user is prompted for one. patterns may be empty to use the configured
// extensions.
func New(cfg *config.Config, open store.Opener, viz Visualizer, in io.Reader, out io.Writer, dir string, patterns []string) *Controller {
	if dir == "" {
		dir = cfg.Scan.DefaultDirectory
	}
	if len(patterns) == 0 {
		patterns = cfg.Scan.Extensions
	}
	return &Controller{
		cfg:      cfg,
		open:     open,
		viz:      viz,
		in:       bufio.NewScanner(in),
		out:      out,
		dir:      dir,
		patterns: patterns,
	}
}

// Run executes the state machine until the user exits. Every error is
// reported and recovered to a well-defined prior state; Run itself only
// returns once the session ends cleanly.
func (c *Controller) Run() error {
	for c.state != stateExit {
		switch c.state {
		case stateChooseDirectory:
			c.chooseDirectory()
		case stateChooseFile:
			c.chooseFile()
		case stateExploreFile:
			c.exploreFile()
		case stateLoaded:
			c.loaded()
		}
	}
	c.closeFile()
	fmt.Fprintln(c.out, "Exiting...")
	return nil
}

func (c *Controller) chooseDirectory() {
	// A directory supplied up front (flag or config) skips the prompt but
	// still has to validate; on failure we fall back to prompting.
	if c.dir != "" {
		if isDir(c.dir) {
			c.state = stateChooseFile
			return
		}
		fmt.Fprintln(c.out, "Invalid directory. Please try again.")
		c.dir = ""
	}

	line, ok := c.prompt("Enter the path to the directory containing the data files (or 'exit' to quit): ")
	if !ok || strings.EqualFold(strings.TrimSpace(line), ExitToken) {
		c.state = stateExit
		return
	}

	dir := strings.TrimSpace(line)
	if !isDir(dir) {
		fmt.Fprintln(c.out, "Invalid directory. Please try again.")
		return // stay in ChooseDirectory
	}
	c.dir = dir

	// Optional override of the configured extension filter.
	line, ok = c.prompt(fmt.Sprintf("File extensions to include, separated by spaces (default %s): ", strings.Join(c.cfg.Scan.Extensions, " ")))
	if !ok {
		c.state = stateExit
		return
	}
	if fields := strings.Fields(line); len(fields) > 0 {
		c.patterns = fields
	} else {
		c.patterns = c.cfg.Scan.Extensions
	}

	c.state = stateChooseFile
}

func (c *Controller) chooseFile() {
	files, err := scan.ListFiles(c.dir, c.patterns)
	if err != nil {
		c.report(err)
		c.dir = ""
		c.state = stateChooseDirectory
		return
	}
	if len(files) == 0 {
		fmt.Fprintln(c.out, "No matching files found. Please choose another directory.")
		c.dir = ""
		c.state = stateChooseDirectory
		return
	}
	c.files = files

	fmt.Fprintln(c.out, "Available files:")
	for i, name := range files {
		fmt.Fprintf(c.out, "%d: %s\n", i+1, name)
	}

	for {
		line, ok := c.prompt("Enter the number of the file to explore, or 0 to quit: ")
		if !ok {
			c.state = stateExit
			return
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid selection: not a number.")
			continue
		}
		if n == 0 {
			c.state = stateExit
			return
		}
		if n < 1 || n > len(files) {
			fmt.Fprintln(c.out, "Invalid selection: out of range.")
			continue
		}

		c.openFile(filepath.Join(c.dir, files[n-1]))
		return
	}
}

// openFile opens the chosen file and discovers its datasets. Any failure
// keeps the controller in ChooseFile with the handle closed.
func (c *Controller) openFile(path string) {
	f, err := c.open(path)
	if err != nil {
		c.report(err)
		return // stay in ChooseFile
	}

	cat, err := catalog.Discover(f)
	if err != nil {
		c.report(err)
		_ = f.Close()
		return
	}
	if cat.Len() == 0 {
		fmt.Fprintln(c.out, "No datasets found in this file.")
		_ = f.Close()
		return
	}

	log.Debugf("discovered %d datasets in %s", cat.Len(), path)
	c.file = f
	c.cat = cat
	c.state = stateExploreFile

	fmt.Fprintf(c.out, "Exploring file: %s\n", path)
	fmt.Fprintln(c.out, "Available datasets:")
	for i, p := range cat.Paths() {
		fmt.Fprintf(c.out, "%d: %s\n", i+1, p)
	}
}

// exploreFile loops the selection resolver against user input. The
// catalog was built on entry; invalid input and failed loads re-enter
// this loop without a new hierarchy walk.
func (c *Controller) exploreFile() {
	for {
		line, ok := c.prompt("Enter the number of the dataset to load, or 'change file' to explore another file: ")
		if !ok {
			c.state = stateExit
			return
		}

		res := catalog.Resolve(c.cat, line)
		switch res.Kind {
		case catalog.ChangeFile:
			c.closeFile()
			c.state = stateChooseFile
			return
		case catalog.Invalid:
			fmt.Fprintf(c.out, "Invalid selection: %s.\n", res.Reason)
			continue
		case catalog.ResolvedPath:
			c.pending = res.Path
			c.state = stateLoaded
			return
		}
	}
}

func (c *Controller) loaded() {
	d, err := dataset.Load(c.file, c.pending)
	if err != nil {
		c.report(err)
		fmt.Fprintln(c.out, "Please select a different dataset.")
		c.state = stateExploreFile // same file, no re-walk
		return
	}

	out, err := c.viz.Render(d)
	if err != nil {
		c.report(errors.Wrap(err, "visualization failed"))
	} else {
		fmt.Fprint(c.out, out)
	}

	// One visualization per loop iteration: back to file selection.
	c.closeFile()
	c.state = stateChooseFile
}

// closeFile releases the current file handle and its catalog, if any.
func (c *Controller) closeFile() {
	if c.file != nil {
		if err := c.file.Close(); err != nil {
			log.Warn("closing file", err)
		}
		c.file = nil
	}
	c.cat = nil
	c.pending = ""
}

// prompt writes msg and reads one line. ok is false on EOF, which ends
// the session cleanly.
func (c *Controller) prompt(msg string) (string, bool) {
	fmt.Fprint(c.out, msg)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	return c.in.Text(), true
}

func (c *Controller) report(err error) {
	fmt.Fprintf(c.out, "Error: %v\n", err)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
