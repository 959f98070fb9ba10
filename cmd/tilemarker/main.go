package main

import (
	"flag"
	"log"

	"chosenoffset.com/tilemarker/internal/config"
	"chosenoffset.com/tilemarker/internal/game"
	ebitenrender "chosenoffset.com/tilemarker/internal/render/ebiten"
	"chosenoffset.com/tilemarker/internal/world"
)

func main() {
	configPath := flag.String("config", "tilemarker.yaml", "overlay options file (YAML or JSON)")
	budget := flag.Int("tiles", 100, "number of tiles the player may mark")
	seed := flag.Int64("seed", 0, "world seed; 0 uses the default layout")
	saveConfig := flag.Bool("save-config", false, "write the effective options back to -config on exit")
	flag.Parse()

	screenWidth := 1280
	screenHeight := 800

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Overlay options: marker %s, draw distance %d, warning limit %d",
		cfg.MarkerColor.Hex(), cfg.MaxDrawDistance, cfg.WarningLimit)

	gen := world.DefaultGeneratorConfig()
	if *seed != 0 {
		gen.Seed = *seed
	}
	w := world.Generate(gen)
	log.Printf("Generated %d buildings around %v", len(w.Buildings), w.Spawn)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(cfg, w, *budget, renderer, inputMgr, screenWidth, screenHeight)

	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("Tile Marker")
	engine.SetWindowResizable(true)

	log.Println("Starting tile marker...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}

	if *saveConfig {
		if err := cfg.Save(*configPath); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		log.Printf("Saved overlay options to %s", *configPath)
	}
}
