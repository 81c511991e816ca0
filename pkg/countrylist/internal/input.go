package internal

import (
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/constants"
)

// Event is one press or release of a virtual button.
type Event struct {
	Button     constants.VirtualButton
	Pressed    bool
	ReleaseAll bool // Set when a hat returns to center
}

var keyboardMap = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_x:         constants.VirtualButtonX,
	sdl.K_y:         constants.VirtualButtonY,
	sdl.K_r:         constants.VirtualButtonY,
	sdl.K_F5:        constants.VirtualButtonY,
	sdl.K_PAGEUP:    constants.VirtualButtonL1,
	sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
	sdl.K_s:         constants.VirtualButtonStart,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_q:         constants.VirtualButtonMenu,
}

// InputProcessor maps SDL keyboard, controller and hat events to virtual
// buttons. Controllers use the Nintendo face layout unless flipped.
type InputProcessor struct {
	flipFaceButtons bool
	controllers     map[sdl.JoystickID]*sdl.GameController
	hatHeld         constants.VirtualButton
}

var (
	processorOnce sync.Once
	processor     *InputProcessor
)

// NewInputProcessor creates a processor; flip selects the direct face mapping.
func NewInputProcessor(flip bool) *InputProcessor {
	return &InputProcessor{
		flipFaceButtons: flip,
		controllers:     make(map[sdl.JoystickID]*sdl.GameController),
	}
}

// InitInputProcessor creates the shared processor and opens every controller
// already connected.
func InitInputProcessor(flip bool) *InputProcessor {
	processorOnce.Do(func() {
		processor = NewInputProcessor(flip)
		for i := 0; i < sdl.NumJoysticks(); i++ {
			processor.openController(i)
		}
	})
	return processor
}

// GetInputProcessor returns the processor created by Init.
func GetInputProcessor() *InputProcessor {
	return processor
}

// ProcessSDLEvent returns the virtual button event for e, or nil when e is not
// an input this application uses.
func (p *InputProcessor) ProcessSDLEvent(e sdl.Event) *Event {
	switch ev := e.(type) {
	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil
		}
		button, ok := keyboardMap[ev.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: ev.State == sdl.PRESSED}

	case *sdl.ControllerButtonEvent:
		button := p.controllerButton(ev.Button)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: ev.State == sdl.PRESSED}

	case *sdl.JoyHatEvent:
		return p.hat(ev.Value)

	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(ev.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			p.closeController(sdl.JoystickID(ev.Which))
		}
	}

	return nil
}

// hat converts a hat position to a press. A hat reports its whole position, so
// moving back to center releases whatever direction was held.
func (p *InputProcessor) hat(value uint8) *Event {
	var button constants.VirtualButton
	switch value {
	case sdl.HAT_UP:
		button = constants.VirtualButtonUp
	case sdl.HAT_DOWN:
		button = constants.VirtualButtonDown
	case sdl.HAT_LEFT:
		button = constants.VirtualButtonLeft
	case sdl.HAT_RIGHT:
		button = constants.VirtualButtonRight
	case sdl.HAT_CENTERED:
		if p.hatHeld == constants.VirtualButtonUnassigned {
			return nil
		}
		released := p.hatHeld
		p.hatHeld = constants.VirtualButtonUnassigned
		return &Event{Button: released, Pressed: false, ReleaseAll: true}
	default:
		return nil
	}

	p.hatHeld = button
	return &Event{Button: button, Pressed: true}
}

func (p *InputProcessor) controllerButton(raw uint8) constants.VirtualButton {
	switch sdl.GameControllerButton(raw) {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return p.face(constants.VirtualButtonA, constants.VirtualButtonB)
	case sdl.CONTROLLER_BUTTON_B:
		return p.face(constants.VirtualButtonB, constants.VirtualButtonA)
	case sdl.CONTROLLER_BUTTON_X:
		return p.face(constants.VirtualButtonX, constants.VirtualButtonY)
	case sdl.CONTROLLER_BUTTON_Y:
		return p.face(constants.VirtualButtonY, constants.VirtualButtonX)
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return constants.VirtualButtonL1
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return constants.VirtualButtonR1
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}

// face picks the direct or the swapped mapping of a face button.
func (p *InputProcessor) face(direct, swapped constants.VirtualButton) constants.VirtualButton {
	if p.flipFaceButtons {
		return direct
	}
	return swapped
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	p.controllers[id] = controller
	GetInternalLogger().Debug("Controller connected", "name", controller.Name(), "id", id)
}

func (p *InputProcessor) closeController(id sdl.JoystickID) {
	if controller, ok := p.controllers[id]; ok {
		controller.Close()
		delete(p.controllers, id)
	}
}

// CloseAllControllers releases every open controller.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id := range processor.controllers {
		processor.closeController(id)
	}
}
