// Package input maps physical keys and mouse buttons to logical actions and
// tracks held state plus per-frame press edges.
package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionQuit
	ActionToggleHUD
	ActionPlaceBlock
	ActionRemoveBlock
	ActionCount // Sentinel value for array sizing
)

// Manager holds bindings and state. GLFW delivers events on the thread that
// polls, so no locking is done.
type Manager struct {
	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	held        [ActionCount]bool
	justPressed [ActionCount]bool
}

// NewManager creates a manager with the default bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionMoveUp)
	m.BindKey(glfw.KeyC, ActionMoveDown)
	m.BindKey(glfw.KeyEscape, ActionQuit)
	m.BindKey(glfw.KeyF1, ActionQuit)
	m.BindKey(glfw.KeyF3, ActionToggleHUD)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionPlaceBlock)
	m.BindMouseButton(glfw.MouseButtonRight, ActionRemoveBlock)
	return m
}

// BindKey binds a key to an action. A key may drive several actions and an
// action may have several keys.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key glfw.Key) {
	delete(m.keyToActions, key)
}

// BindMouseButton binds a mouse button to an action
func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mouseButtonToActions[button] = append(m.mouseButtonToActions[button], action)
}

// HandleKeyEvent updates state from a GLFW key event. Repeats count as held.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.apply(m.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent updates state from a GLFW mouse button event.
func (m *Manager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	m.apply(m.mouseButtonToActions[button], action == glfw.Press)
}

func (m *Manager) apply(actions []Action, pressed bool) {
	for _, a := range actions {
		if pressed && !m.held[a] {
			m.justPressed[a] = true
		}
		m.held[a] = pressed
	}
}

// PostUpdate clears press edges; call it once at the end of every frame.
func (m *Manager) PostUpdate() {
	m.justPressed = [ActionCount]bool{}
}

// IsActive reports whether the action is held.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return m.held[action]
}

// JustPressed reports whether the action went down since the last PostUpdate.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return m.justPressed[action]
}
