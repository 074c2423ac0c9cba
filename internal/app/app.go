// Package app implements the main NES emulator application with GUI support.
package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gones/internal/cartridge"
	"gones/internal/controller"
	"gones/internal/graphics"
	"gones/internal/machine"
)

// Application represents the main NES emulator application.
type Application struct {
	machine *machine.Machine

	graphicsBackend graphics.Backend
	window          graphics.Window
	videoProcessor  *graphics.VideoProcessor

	config   *Config
	emulator *Emulator
	states   *StateManager
	audio    *AudioPlayer

	running     bool
	paused      bool
	showMenu    bool
	initialized bool
	headless    bool

	frameCount  uint64
	startTime   time.Time
	lastFPSTime time.Time
	currentFPS  float64

	romPath   string
	cartridge *cartridge.Cartridge

	lastESCTime time.Time

	logger *log.Logger
}

// ApplicationError represents application-specific errors.
type ApplicationError struct {
	Component string
	Operation string
	Err       error
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("Application %s error during %s: %v", e.Component, e.Operation, e.Err)
}

// NewApplication creates a new NES emulator application.
func NewApplication(configPath string) (*Application, error) {
	return NewApplicationWithMode(configPath, false)
}

// NewApplicationWithMode creates a new NES emulator application with optional headless mode.
func NewApplicationWithMode(configPath string, headless bool) (*Application, error) {
	app := &Application{
		config:      NewConfig(),
		headless:    headless,
		startTime:   time.Now(),
		lastFPSTime: time.Now(),
	}

	if configPath != "" {
		if err := app.config.LoadFromFile(configPath); err != nil {
			fmt.Printf("[APP_WARNING] Could not load config from %s, using defaults: %v\n", configPath, err)
		}
	}

	if app.config.Debug.EnableLogging {
		app.logger = log.New(log.Writer(), "[BUS] ", log.LstdFlags)
	}

	if err := app.initializeGraphicsBackend(headless); err != nil {
		return nil, &ApplicationError{Component: "initialization", Operation: "graphics setup", Err: err}
	}

	app.states = NewStateManager(app.config.Paths.SaveStates)

	audioPlayer, err := NewAudioPlayer(app.config)
	if err != nil {
		fmt.Printf("[APP_WARNING] Audio output unavailable: %v\n", err)
		audioPlayer = &AudioPlayer{}
	}
	app.audio = audioPlayer

	app.initialized = true
	return app, nil
}

// initializeGraphicsBackend initializes the graphics backend based on configuration.
func (app *Application) initializeGraphicsBackend(headless bool) error {
	var backendType graphics.BackendType
	if headless {
		backendType = graphics.BackendHeadless
	} else {
		switch app.config.Video.Backend {
		case "ebitengine":
			backendType = graphics.BackendEbitengine
		case "headless":
			backendType = graphics.BackendHeadless
		case "terminal":
			backendType = graphics.BackendTerminal
		default:
			backendType = graphics.BackendEbitengine
		}
	}

	var err error
	app.graphicsBackend, err = graphics.CreateBackend(backendType)
	if err != nil {
		return fmt.Errorf("failed to create graphics backend: %v", err)
	}

	graphicsConfig := graphics.Config{
		WindowTitle:  "gones - Go NES Emulator",
		WindowWidth:  app.config.Window.Width,
		WindowHeight: app.config.Window.Height,
		Fullscreen:   app.config.Window.Fullscreen,
		VSync:        app.config.Video.VSync,
		Filter:       app.config.Video.Filter,
		AspectRatio:  app.config.Video.AspectRatio,
		Headless:     headless,
		Debug:        app.config.Debug.EnableLogging,
	}

	if err := app.graphicsBackend.Initialize(graphicsConfig); err != nil {
		if backendType == graphics.BackendEbitengine {
			fmt.Printf("[APP_WARNING] Ebitengine backend failed (%v), falling back to headless mode\n", err)
			app.graphicsBackend, err = graphics.CreateBackend(graphics.BackendHeadless)
			if err != nil {
				return fmt.Errorf("failed to create fallback headless backend: %v", err)
			}
			graphicsConfig.Headless = true
			if err := app.graphicsBackend.Initialize(graphicsConfig); err != nil {
				return fmt.Errorf("failed to initialize fallback headless backend: %v", err)
			}
		} else {
			return fmt.Errorf("failed to initialize graphics backend: %v", err)
		}
	}

	if !headless && !app.graphicsBackend.IsHeadless() {
		app.window, err = app.graphicsBackend.CreateWindow(
			graphicsConfig.WindowTitle, graphicsConfig.WindowWidth, graphicsConfig.WindowHeight)
		if err != nil {
			return fmt.Errorf("failed to create window: %v", err)
		}
	}

	app.videoProcessor = graphics.NewVideoProcessor(
		app.config.Video.Brightness, app.config.Video.Contrast, app.config.Video.Saturation)

	return nil
}

// LoadROM loads a ROM file into the emulator.
func (app *Application) LoadROM(romPath string) error {
	if !app.initialized {
		return errors.New("application not initialized")
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		return &ApplicationError{Component: "cartridge", Operation: "load ROM", Err: err}
	}
	cart, err := cartridge.Parse(data)
	if err != nil {
		return &ApplicationError{Component: "cartridge", Operation: "load ROM", Err: err}
	}

	m, err := machine.New(cart, nil)
	if err != nil {
		return &ApplicationError{Component: "machine", Operation: "construct", Err: err}
	}
	if app.logger != nil {
		m.Bus.SetLogger(app.logger)
		m.PPU.SetLogger(app.logger)
	}

	app.cartridge = cart
	app.romPath = romPath
	app.machine = m
	app.emulator = NewEmulator(m, app.config)

	if app.window != nil {
		app.window.SetTitle(fmt.Sprintf("gones - %s", filepath.Base(romPath)))
	}

	app.emulator.Start()
	return nil
}

// Run starts the main application loop.
func (app *Application) Run() error {
	if !app.initialized {
		return errors.New("application not initialized")
	}

	app.running = true
	app.startTime = time.Now()
	app.lastFPSTime = time.Now()

	if app.config.Debug.EnableLogging {
		fmt.Printf("[APP_DEBUG] Starting emulator with %s backend...\n", app.graphicsBackend.GetName())
	}

	if app.graphicsBackend.GetName() == "Ebitengine" && app.window != nil {
		if ebitengineWindow, ok := graphics.AsEbitengineWindow(app.window); ok {
			ebitengineWindow.SetEmulatorUpdateFunc(func() error {
				frameStart := time.Now()
				if err := app.processInput(); err != nil && app.config.Debug.EnableLogging {
					fmt.Printf("[APP_ERROR] Input processing error: %v\n", err)
				}
				if err := app.updateEmulator(); err != nil {
					return err
				}
				if err := app.render(); err != nil {
					return err
				}
				app.updatePerformanceMetrics(frameStart)
				if app.window != nil && app.window.ShouldClose() {
					app.Stop()
				}
				return nil
			})
			return ebitengineWindow.Run()
		}
	}

	for app.running {
		frameStart := time.Now()

		if err := app.processInput(); err != nil && app.config.Debug.EnableLogging {
			fmt.Printf("[APP_ERROR] Input processing error: %v\n", err)
		}
		if err := app.updateEmulator(); err != nil && app.config.Debug.EnableLogging {
			fmt.Printf("[APP_DEBUG] Emulator update error: %v\n", err)
		}
		if err := app.render(); err != nil && app.config.Debug.EnableLogging {
			fmt.Printf("[APP_ERROR] Render error: %v\n", err)
		}

		app.updatePerformanceMetrics(frameStart)

		if app.window != nil && app.window.ShouldClose() {
			app.Stop()
		}

		time.Sleep(16 * time.Millisecond) // ~60 FPS for non-Ebitengine backends
	}

	if app.config.Debug.EnableLogging {
		fmt.Println("[APP_DEBUG] Emulator main loop ended")
	}
	return nil
}

func (app *Application) updateEmulator() error {
	if !app.paused && app.cartridge != nil && app.emulator != nil {
		if err := app.emulator.Update(); err != nil {
			return err
		}
		app.audio.Push(app.emulator.GetAudioSamples())
		return nil
	}
	return nil
}

// processInput processes input events from the graphics backend and
// applies them to the machine's controller ports.
func (app *Application) processInput() error {
	if app.window == nil {
		return nil
	}

	events := app.window.PollEvents()
	if len(events) == 0 {
		return nil
	}

	for _, event := range events {
		switch event.Type {
		case graphics.InputEventTypeQuit:
			app.Stop()
			return nil

		case graphics.InputEventTypeButton:
			if app.handleSpecialInput(event) {
				continue
			}
			if app.machine == nil {
				continue
			}
			app.applyButton(app.machine.Controller1, graphicsButtonToControllerButton(event.Button), event.Pressed)

		case graphics.InputEventTypeKey:
			if !app.handleSpecialInput(event) {
				app.handleKeyInput(event)
			}
		}
	}

	return nil
}

func (app *Application) applyButton(pad *controller.Controller, b controller.Button, pressed bool) {
	if pressed {
		pad.SetPressed(b)
	} else {
		pad.SetReleased(b)
	}
}

// handleSpecialInput handles special input combinations (quit confirmation, save states).
func (app *Application) handleSpecialInput(event graphics.InputEvent) bool {
	if !event.Pressed {
		return false
	}

	if event.Type == graphics.InputEventTypeKey && event.Key == graphics.KeyEscape {
		now := time.Now()
		if !app.lastESCTime.IsZero() && now.Sub(app.lastESCTime) < 3*time.Second {
			fmt.Println("ESC double-tap confirmed - shutting down emulator...")
			app.Stop()
			return true
		}
		fmt.Println("ESC pressed - press ESC again within 3 seconds to quit, or continue playing...")
		app.lastESCTime = now
		return true
	}

	if event.Type == graphics.InputEventTypeKey && event.Key != graphics.KeyEscape {
		app.lastESCTime = time.Time{}
	}

	if event.Type == graphics.InputEventTypeKey {
		switch event.Key {
		case graphics.KeyF1, graphics.KeyF2, graphics.KeyF3, graphics.KeyF4, graphics.KeyF5,
			graphics.KeyF6, graphics.KeyF7, graphics.KeyF8, graphics.KeyF9, graphics.KeyF10:
			slot := int(event.Key - graphics.KeyF1)
			if event.Modifiers&graphics.ModifierShift != 0 {
				if err := app.LoadState(slot); err != nil {
					fmt.Printf("Failed to load state %d: %v\n", slot, err)
				}
			} else if err := app.SaveState(slot); err != nil {
				fmt.Printf("Failed to save state %d: %v\n", slot, err)
			}
			return true
		}
	}

	return false
}

func (app *Application) handleKeyInput(event graphics.InputEvent) bool { return false }

func graphicsButtonToControllerButton(gButton graphics.Button) controller.Button {
	switch gButton {
	case graphics.ButtonA:
		return controller.A
	case graphics.ButtonB:
		return controller.B
	case graphics.ButtonSelect:
		return controller.Select
	case graphics.ButtonStart:
		return controller.Start
	case graphics.ButtonUp:
		return controller.Up
	case graphics.ButtonDown:
		return controller.Down
	case graphics.ButtonLeft:
		return controller.Left
	case graphics.ButtonRight:
		return controller.Right
	default:
		return controller.A
	}
}

// GetMachine returns the machine for direct access (testing, headless mode).
func (app *Application) GetMachine() *machine.Machine { return app.machine }

func (app *Application) render() error {
	if app.window == nil {
		return nil
	}

	if app.cartridge != nil && app.emulator != nil {
		frameBufferSlice := app.emulator.GetFrameBuffer()
		if app.videoProcessor != nil {
			frameBufferSlice = app.videoProcessor.ProcessFrame(frameBufferSlice)
		}
		var frameBuffer [256 * 240]uint32
		copy(frameBuffer[:], frameBufferSlice)
		if err := app.window.RenderFrame(frameBuffer); err != nil {
			return fmt.Errorf("failed to render NES frame: %v", err)
		}
	}

	app.window.SwapBuffers()
	return nil
}

func (app *Application) updatePerformanceMetrics(frameStartTime time.Time) {
	now := time.Now()
	app.frameCount++

	if now.Sub(app.lastFPSTime) >= time.Second {
		elapsed := now.Sub(app.lastFPSTime).Seconds()
		app.currentFPS = float64(app.frameCount) / elapsed
		app.lastFPSTime = now
		app.frameCount = 0
		if app.config.Debug.EnableLogging {
			log.Printf("[FPS] %.1f", app.currentFPS)
		}
	}
}

// Stop stops the application.
func (app *Application) Stop() { app.running = false }

// Pause pauses the emulator.
func (app *Application) Pause() { app.paused = true }

// Resume resumes the emulator.
func (app *Application) Resume() { app.paused = false }

// TogglePause toggles pause state.
func (app *Application) TogglePause() { app.paused = !app.paused }

// ShowMenu shows the menu.
func (app *Application) ShowMenu() { app.showMenu = true; app.paused = true }

// HideMenu hides the menu.
func (app *Application) HideMenu() { app.showMenu = false; app.paused = false }

// ToggleMenu toggles menu visibility.
func (app *Application) ToggleMenu() {
	if app.showMenu {
		app.HideMenu()
	} else {
		app.ShowMenu()
	}
}

// SaveState saves the current emulator state.
func (app *Application) SaveState(slot int) error {
	if app.cartridge == nil {
		return errors.New("no ROM loaded")
	}
	return app.states.SaveState(app.machine, slot, app.romPath)
}

// LoadState loads a saved emulator state.
func (app *Application) LoadState(slot int) error {
	if app.cartridge == nil {
		return errors.New("no ROM loaded")
	}
	return app.states.LoadState(app.machine, slot, app.romPath)
}

// Reset resets the emulator.
func (app *Application) Reset() {
	if app.machine != nil {
		app.machine.Reset()
	}
}

// IsRunning returns whether the application is running.
func (app *Application) IsRunning() bool { return app.running }

// IsPaused returns whether the emulator is paused.
func (app *Application) IsPaused() bool { return app.paused }

// IsMenuVisible returns whether the menu is visible.
func (app *Application) IsMenuVisible() bool { return app.showMenu }

// GetFPS returns the current FPS.
func (app *Application) GetFPS() float64 { return app.currentFPS }

// GetFrameCount returns the total frame count.
func (app *Application) GetFrameCount() uint64 {
	if app.emulator == nil {
		return 0
	}
	return app.emulator.GetFrameCount()
}

// GetUptime returns the application uptime.
func (app *Application) GetUptime() time.Duration { return time.Since(app.startTime) }

// GetROMPath returns the currently loaded ROM path.
func (app *Application) GetROMPath() string { return app.romPath }

// GetConfig returns the application configuration.
func (app *Application) GetConfig() *Config { return app.config }

// ApplyDebugSettings applies debug settings that affect logging verbosity.
func (app *Application) ApplyDebugSettings() {
	if app.config == nil {
		return
	}
	if app.config.Debug.EnableLogging {
		if app.logger == nil {
			app.logger = log.New(log.Writer(), "[BUS] ", log.LstdFlags)
		}
		fmt.Printf("[DEBUG] Logging enabled (level=%s)\n", app.config.Debug.LogLevel)
	}
}

// Cleanup releases all resources and shuts down the application.
func (app *Application) Cleanup() error {
	if app.config != nil && app.config.Debug.EnableLogging {
		fmt.Println("[APP_DEBUG] Cleaning up application resources...")
	}

	var lastErr error

	if app.states != nil {
		if err := app.states.Cleanup(); err != nil {
			lastErr = err
			fmt.Printf("[APP_ERROR] State manager cleanup error: %v\n", err)
		}
	}

	if app.emulator != nil {
		if err := app.emulator.Cleanup(); err != nil {
			lastErr = err
			fmt.Printf("[APP_ERROR] Emulator cleanup error: %v\n", err)
		}
	}

	if app.window != nil {
		if err := app.window.Cleanup(); err != nil {
			lastErr = err
			fmt.Printf("[APP_ERROR] Window cleanup error: %v\n", err)
		}
	}

	if app.graphicsBackend != nil {
		if err := app.graphicsBackend.Cleanup(); err != nil {
			lastErr = err
			fmt.Printf("[APP_ERROR] Graphics backend cleanup error: %v\n", err)
		}
	}

	app.initialized = false
	return lastErr
}
