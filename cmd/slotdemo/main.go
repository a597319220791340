package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/slotpool/errors"
	"github.com/wippyai/slotpool/registry"
	"github.com/wippyai/slotpool/slot"
)

// mesh is the demo element type stored in the pool.
type mesh struct {
	name     string
	vertices int
}

func main() {
	var (
		maxCap      = flag.Int("max", 0, "Pool capacity bound (0 = unbounded)")
		extra       = flag.Int("n", 0, "Extra meshes to create in the scripted run")
		verbose     = flag.Bool("v", false, "Log slot lifecycle events")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*maxCap); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*maxCap, *extra, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run walks through the pool's lifecycle on stdout: creation, counted
// copies, destroy hooks, weak upgrade failure after expiry, and capacity
// refusal.
func run(maxCap, extra int, verbose bool) error {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer logger.Sync()
		slot.SetLogger(logger)
		registry.Acquire[mesh]().Subscribe(slot.NewLogObserver(logger))
	}

	if maxCap > 0 {
		registry.SetMaxCapacity[mesh](maxCap)
	}

	box := registry.Create(mesh{name: "Box", vertices: 8})
	sphere := registry.Create(mesh{name: "Sphere", vertices: 240})
	if !box.Valid() || !sphere.Valid() {
		return errors.CapacityExhausted(registry.Acquire[mesh]().Count(), maxCap)
	}

	box.SetOnDestroy(func() { fmt.Println("Box destroyed") })
	sphere.SetOnDestroy(func() { fmt.Println("Sphere destroyed") })

	fmt.Println("=== clone ===")
	boxCopy := box.Clone()
	fmt.Printf("box use count: %d\n", box.UseCount())

	weak := box.Weak()

	fmt.Println("\n=== box.Release() ===")
	box.Release()
	fmt.Printf("boxCopy use count: %d\n", boxCopy.UseCount())

	fmt.Println("\n=== boxCopy.Release() ===")
	boxCopy.Release()
	if _, ok := weak.Upgrade(); !ok {
		fmt.Println("weak ref to Box no longer upgrades")
	}

	if extra > 0 {
		fmt.Printf("\n=== %d extra meshes ===\n", extra)
		refused := 0
		refs := make([]slot.StrongRef[mesh], 0, extra)
		for i := 0; i < extra; i++ {
			ref := registry.Create(mesh{name: fmt.Sprintf("Mesh-%d", i), vertices: 3 * (i + 1)})
			if !ref.Valid() {
				refused++
				continue
			}
			refs = append(refs, ref)
		}
		pool := registry.Acquire[mesh]()
		fmt.Printf("alive: %d, capacity: %d, refused: %d\n", pool.Count(), pool.Capacity(), refused)
		for i := range refs {
			refs[i].Release()
		}
	}

	fmt.Println("\n=== sphere.Release() ===")
	sphere.Release()

	pool := registry.Acquire[mesh]()
	fmt.Printf("\nalive: %d, capacity before shrink: %d\n", pool.Count(), pool.Capacity())
	pool.ShrinkToFit()
	fmt.Printf("capacity after shrink: %d\n", pool.Capacity())
	return nil
}
