package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"voxelforge.dev/internal/gcode"
	"voxelforge.dev/internal/gen"
	"voxelforge.dev/internal/mesh"
	"voxelforge.dev/internal/runindex"
	"voxelforge.dev/internal/tuning"
	"voxelforge.dev/internal/voxel"
)

func main() {
	var (
		bruteforce  = flag.Bool("bruteforce", false, "emit a cube per solid voxel (no store)")
		shell       = flag.Bool("shell", false, "emit cubes on the predicate boundary only (no store)")
		inject      = flag.Bool("inject", false, "run the injector demo (seed march along +x)")
		frames      = flag.Bool("frames", false, "write a mesh frame every tuning.frame_every insertions")
		framesCZ    = flag.Bool("frames_constz", false, "write a mesh frame per completed z slice")
		gcodePath   = flag.String("gcode", "", "toolpath file to deposit (overrides procedural modes)")
		listRuns    = flag.Bool("list_runs", false, "print recent runs from the stats db and exit")

		engine     = flag.String("engine", "runs", "occupancy engine: runs|intervals")
		out        = flag.String("out", "test.obj", "output mesh path (.zst for compressed)")
		framesDir  = flag.String("frames_dir", "frames", "output directory for frame modes")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: built-in constants)")
		scale      = flag.Float64("scale", 0, "vertex scale factor (0 = 1.0, or tuning.unit for gcode)")
		offX       = flag.Float64("offset_x", 0, "vertex x offset")
		offY       = flag.Float64("offset_y", 0, "vertex y offset")
		offZ       = flag.Float64("offset_z", 0, "vertex z offset")
		statsDB    = flag.String("stats_db", "", "sqlite run diary path (empty to disable)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[voxelforge] ", log.LstdFlags|log.Lmicroseconds)

	tune := tuning.Defaults()
	if *tuningPath != "" {
		var err error
		tune, err = tuning.Load(*tuningPath)
		if err != nil {
			logger.Fatalf("load tuning: %v", err)
		}
	}

	var idx *runindex.DB
	if *statsDB != "" {
		var err error
		idx, err = runindex.Open(*statsDB)
		if err != nil {
			logger.Fatalf("open stats db: %v", err)
		}
		defer idx.Close()
	}

	if *listRuns {
		if idx == nil {
			logger.Fatalf("-list_runs needs -stats_db")
		}
		runs, err := idx.List(20)
		if err != nil {
			logger.Fatalf("list runs: %v", err)
		}
		for _, r := range runs {
			fmt.Printf("%s  %-12s %-9s blocks=%-9d ranges=%-8d verts=%-9d faces=%-9d %6dms  %s\n",
				r.StartedAt.Format(time.RFC3339), r.Mode, r.Engine,
				r.Blocks, r.Ranges, r.Verts, r.Faces, r.DurationMs, r.Output)
		}
		return
	}

	st, err := voxel.NewStore(voxel.Engine(*engine))
	if err != nil {
		logger.Fatalf("engine: %v", err)
	}

	outScale := *scale
	if outScale == 0 {
		outScale = 1
		if *gcodePath != "" {
			outScale = tune.Unit
		}
	}
	offset := [3]float64{*offX, *offY, *offZ}
	pred := gen.Sphere(tune.SphereRadius)

	started := time.Now()
	mode := "surface"
	var m *mesh.Mesh

	switch {
	case *gcodePath != "":
		mode = "gcode"
		f, err := os.Open(*gcodePath)
		if err != nil {
			logger.Fatalf("open gcode: %v", err)
		}
		dep := gcode.NewDepositor(st, gcode.Params{
			Unit:        tune.Unit,
			BlocksPerE:  tune.BlocksPerE,
			StepSize:    tune.StepSize,
			LayerDepth:  tune.LayerDepth,
			InjectDepth: tune.InjectDepth,
		}, logger)
		err = dep.Run(f)
		f.Close()
		if err != nil {
			logger.Fatalf("deposit: %v", err)
		}
		logVoxelStats(logger, st, started)
		m = buildMesh(logger, st)

	case *inject:
		mode = "inject"
		gen.InjectDemo(st, -tune.DemoSlabHalf, tune.DemoSlabHalf,
			tune.DemoStep, tune.DemoDist, tune.DemoRate, tune.InjectDepth)
		logVoxelStats(logger, st, started)
		m = buildMesh(logger, st)

	case *frames:
		mode = "frames"
		if err := emitFrames(logger, *framesDir, outScale, offset, func(emit func(int, *mesh.Mesh) error) error {
			return gen.Frames(st, tune.SphereRadius, pred, tune.FrameEvery, emit)
		}); err != nil {
			logger.Fatalf("frames: %v", err)
		}
		logVoxelStats(logger, st, started)
		recordRun(logger, idx, mode, *engine, st, nil, started, *framesDir)
		return

	case *framesCZ:
		mode = "frames_constz"
		if err := emitFrames(logger, *framesDir, outScale, offset, func(emit func(int, *mesh.Mesh) error) error {
			return gen.FramesConstZ(st, tune.SphereRadius, pred, emit)
		}); err != nil {
			logger.Fatalf("frames: %v", err)
		}
		logVoxelStats(logger, st, started)
		recordRun(logger, idx, mode, *engine, st, nil, started, *framesDir)
		return

	case *bruteforce:
		mode = "bruteforce"
		m = gen.BruteForce(tune.SphereRadius, pred)

	case *shell:
		mode = "shell"
		m = gen.Shell(tune.SphereRadius, pred)

	default:
		gen.Fill(st, tune.SphereRadius, pred)
		logVoxelStats(logger, st, started)
		m = buildMesh(logger, st)
	}

	swSer := time.Now()
	if err := m.WriteOBJ(*out, offset, outScale); err != nil {
		logger.Fatalf("serialize: %v", err)
	}
	logger.Printf("serialize: took=%dms verts=%d faces=%d out=%s",
		time.Since(swSer).Milliseconds(), len(m.Verts()), len(m.Faces()), *out)

	recordRun(logger, idx, mode, *engine, st, m, started, *out)
}

func logVoxelStats(logger *log.Logger, st voxel.Store, started time.Time) {
	bb := st.Bounds()
	logger.Printf("voxel construction: took=%dms blocks=%d ranges=%d",
		time.Since(started).Milliseconds(), st.Blocks(), st.Ranges())
	if bb.Count > 0 {
		logger.Printf("bounding box: [%v, %v]", bb.Min, bb.Max)
	}
}

func buildMesh(logger *log.Logger, st voxel.Store) *mesh.Mesh {
	sw := time.Now()
	m := mesh.Build(st)
	logger.Printf("mesh build: took=%dms", time.Since(sw).Milliseconds())
	return m
}

func emitFrames(logger *log.Logger, dir string, scale float64, offset [3]float64,
	run func(emit func(int, *mesh.Mesh) error) error) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return run(func(frame int, m *mesh.Mesh) error {
		path := filepath.Join(dir, fmt.Sprintf("frame_%03d.obj", frame))
		if err := m.WriteOBJ(path, offset, scale); err != nil {
			return err
		}
		logger.Printf("frame %03d: verts=%d faces=%d", frame, len(m.Verts()), len(m.Faces()))
		return nil
	})
}

func recordRun(logger *log.Logger, idx *runindex.DB, mode, engine string,
	st voxel.Store, m *mesh.Mesh, started time.Time, output string) {
	if idx == nil {
		return
	}
	r := runindex.Run{
		StartedAt:  started,
		Mode:       mode,
		Engine:     engine,
		Blocks:     st.Blocks(),
		Ranges:     st.Ranges(),
		DurationMs: time.Since(started).Milliseconds(),
		Output:     output,
	}
	if m != nil {
		r.Verts = len(m.Verts())
		r.Faces = len(m.Faces())
	}
	if err := idx.Record(r); err != nil {
		logger.Printf("stats db: %v", err)
	}
}
