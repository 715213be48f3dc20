package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ivlev/cardmotion/internal/camera"
	"github.com/ivlev/cardmotion/internal/engine"
	"github.com/ivlev/cardmotion/internal/geom"
	"github.com/ivlev/cardmotion/internal/motion"
	"github.com/ivlev/cardmotion/internal/path"
	"github.com/ivlev/cardmotion/internal/preview"
	"github.com/ivlev/cardmotion/internal/scenario"
)

func main() {
	// Make sure the working directories exist
	dirs := []string{scenario.ScenesDir, "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	scenePtr := flag.String("scene", "", "Scene YAML file (default: most recent file in scenes/)")
	outPtr := flag.String("out", "", "Bake output JSON path (default: generated in output/)")
	framesPtr := flag.Int("frames", 0, "Override the scene's frame count")
	fpsPtr := flag.Int("fps", 0, "Override the scene's FPS")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Bake worker count")
	statsPtr := flag.Bool("stats", false, "Print the performance report after baking")
	initPtr := flag.Bool("init", false, "Write an example scene to scenes/ and exit")
	listPtr := flag.Bool("list-paths", false, "List registered path types and exit")
	previewPtr := flag.String("preview", "", "Render per-object path previews into this directory instead of baking")
	previewSizePtr := flag.Int("preview-size", 512, "Preview image size in pixels")
	simplifyPtr := flag.Float64("simplify", 0, "Simplify the camera track with this RDP tolerance")
	resamplePtr := flag.Int("resample", 0, "Resample the camera track at this frame interval")
	smoothPtr := flag.Int("smooth", 0, "Smooth camera positions with this window size")
	sceneOutPtr := flag.String("scene-out", "", "Output path for a processed scene (default: timestamped in scenes/)")

	flag.Parse()

	if *listPtr {
		listPathTypes()
		return
	}

	if *initPtr {
		writeExampleScene()
		return
	}

	scenePath := *scenePtr
	if scenePath == "" {
		latest, err := scenario.FindLatestScene(scenario.ScenesDir)
		if err != nil {
			log.Fatalf("[-] Error: %v. Put a scene YAML in %s/ or run with -init", err, scenario.ScenesDir)
		}
		scenePath = latest
		fmt.Printf("[*] Using scene: %s\n", scenePath)
	}

	scene, err := scenario.ReadScene(scenePath)
	if err != nil {
		log.Fatalf("[-] Failed to read scene: %v", err)
	}

	if *framesPtr > 0 {
		scene.FrameCount = *framesPtr
	}
	if *fpsPtr > 0 {
		scene.FPS = *fpsPtr
	}

	// Camera track post-processing mode: rewrite the scene instead of baking.
	if *simplifyPtr > 0 || *resamplePtr > 0 || *smoothPtr > 0 {
		processCameraTrack(scene, scenePath, *simplifyPtr, *resamplePtr, *smoothPtr, *sceneOutPtr)
		return
	}

	// Preview mode: render each object's path and exit.
	if *previewPtr != "" {
		renderPreviews(scene, *previewPtr, *previewSizePtr)
		return
	}

	project := engine.NewBakeProject(scene, filepath.Base(scenePath))
	project.Workers = *workersPtr
	project.ShowStats = *statsPtr

	result, err := project.Run()
	if err != nil {
		log.Fatalf("[-] Bake failed: %v", err)
	}

	outPath := *outPtr
	if outPath == "" {
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		outPath = filepath.Join("output", fmt.Sprintf("bake_%s.json", timestamp))
	}

	if err := engine.WriteResult(result, outPath); err != nil {
		log.Fatalf("[-] Failed to write bake output: %v", err)
	}

	fmt.Printf("[+++] Done! Baked %d tracks to %s\n", len(result.Tracks), outPath)
}

func listPathTypes() {
	for _, cfg := range path.Default.GetAllConfigs() {
		fmt.Printf("%-12s %s — %s\n", cfg.Type, cfg.Name, cfg.Description)
		for _, meta := range cfg.Parameters {
			fmt.Printf("    %-18s [%g..%g] default %g\n", meta.Key, meta.Min, meta.Max, meta.Default)
		}
	}
}

func processCameraTrack(scene *scenario.Scene, scenePath string, tolerance float64, interval, window int, sceneOut string) {
	keyframes := scene.Camera.Keyframes
	if len(keyframes) == 0 {
		log.Fatalf("[-] Scene %s has no camera keyframes to process", scenePath)
	}
	before := len(keyframes)

	if interval > 0 {
		keyframes = camera.Resample(keyframes, interval, scene.Camera.DefaultFOV, scene.Camera.Tension)
		fmt.Printf("[*] Resampled camera track at every %d frames: %d keyframes\n", interval, len(keyframes))
	}
	if window > 0 {
		keyframes = camera.Smooth(keyframes, window)
		fmt.Printf("[*] Smoothed camera positions (window %d)\n", window)
	}
	if tolerance > 0 {
		keyframes = camera.Simplify(keyframes, tolerance)
		fmt.Printf("[*] Simplified camera track (tolerance %g): %d -> %d keyframes\n", tolerance, before, len(keyframes))
	}

	scene.Camera.Keyframes = keyframes

	if sceneOut == "" {
		sceneOut = scenario.GenerateScenePath()
	}
	if err := scenario.WriteScene(scene, sceneOut); err != nil {
		log.Fatalf("[-] Failed to write processed scene: %v", err)
	}
	fmt.Printf("[+++] Done! Processed scene saved: %s\n", sceneOut)
}

func renderPreviews(scene *scenario.Scene, dir string, size int) {
	os.MkdirAll(dir, 0755)

	for _, obj := range scene.Objects {
		gen := path.Default.Create(obj.Motion.PathType, obj.Motion.PathParams)
		if gen == nil {
			continue
		}
		if cp, ok := gen.(path.ControlPointPath); ok && len(obj.Motion.Points) > 0 {
			cp.SetControlPoints(obj.Motion.Points)
		}

		img := preview.RenderPath(gen, 512, size, preview.ProjectionTop)
		outPath := filepath.Join(dir, fmt.Sprintf("%s_top.png", obj.Name))
		if err := preview.WritePNG(img, outPath); err != nil {
			log.Printf("[!] Preview failed for %s: %v", obj.Name, err)
			continue
		}
		fmt.Printf("[>] Preview: %s\n", outPath)
	}
}

// writeExampleScene emits a small scene exercising every built-in path
// family, as a starting point for hand editing.
func writeExampleScene() {
	scene := &scenario.Scene{
		Version:    "1.0",
		FPS:        30,
		FrameCount: 120,
		Objects: []scenario.Object{
			{
				Name: "card_orbit",
				Motion: motion.Config{
					PathType: path.TypeCircular,
					PathParams: map[string]float64{
						"radiusX": 4, "radiusY": 4, "heightAmplitude": 1,
					},
					Speed:    1,
					Loop:     motion.LoopLoop,
					Duration: 120,
					Modifiers: []motion.ModifierConfig{
						{Type: motion.ModifierLookAt, Enabled: true, Params: map[string]float64{"followPath": 1}},
						{Type: motion.ModifierScalePulse, Enabled: true, Params: map[string]float64{"frequency": 0.5}},
					},
				},
			},
			{
				Name: "card_sweep",
				Motion: motion.Config{
					PathType: path.TypeLinear,
					PathParams: map[string]float64{
						"startX": -6, "endX": 6, "endY": 2,
					},
					Speed:    1,
					Loop:     motion.LoopPingPong,
					Duration: 60,
					Modifiers: []motion.ModifierConfig{
						{Type: motion.ModifierWobble, Enabled: true, Params: map[string]float64{"frequency": 2, "amplitudeY": 0.3}},
					},
				},
			},
			{
				Name: "card_weave",
				Motion: motion.Config{
					PathType: path.TypeSpline,
					Points: []geom.Point3D{
						{X: -5, Y: 0, Z: -3},
						{X: -1, Y: 2, Z: 2},
						{X: 2, Y: -1, Z: -2},
						{X: 5, Y: 1, Z: 3},
					},
					Speed:    1,
					Loop:     motion.LoopPingPong,
					Duration: 90,
				},
			},
			{
				Name: "particle_chaos",
				Motion: motion.Config{
					PathType: path.TypeLorenz,
					Speed:    0.5,
					Loop:     motion.LoopLoop,
					Duration: 240,
				},
			},
			{
				Name: "spark_weave",
				Motion: motion.Config{
					PathType: path.TypeLissajous,
					Speed:    1,
					Loop:     motion.LoopLoop,
					Duration: 180,
					Modifiers: []motion.ModifierConfig{
						{Type: motion.ModifierRotation, Enabled: true, Params: map[string]float64{"speedY": 0.5}},
					},
				},
			},
		},
		Camera: scenario.CameraTrack{
			DefaultFOV: 60,
			Tension:    0.5,
			Keyframes: []camera.Keyframe{
				{Frame: 0, Position: geom.Point3D{X: 0, Y: 3, Z: 12}, Rotation: geom.IdentityQuaternion()},
				{Frame: 60, Position: geom.Point3D{X: 6, Y: 4, Z: 8}, Rotation: geom.Quaternion{Y: 0.259, W: 0.966}, FOV: 50},
				{Frame: 120, Position: geom.Point3D{X: 0, Y: 6, Z: 12}, Rotation: geom.IdentityQuaternion()},
			},
		},
	}

	outPath := scenario.GenerateScenePath()
	if err := scenario.WriteScene(scene, outPath); err != nil {
		log.Fatalf("[-] Failed to write example scene: %v", err)
	}
	fmt.Printf("[+++] Done! Example scene saved: %s\n", outPath)
}
