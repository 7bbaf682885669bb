package main

import (
	"voxel/internal/input"
	"voxel/internal/player"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var moveActions = [...]struct {
	action input.Action
	move   player.Move
}{
	{input.ActionMoveForward, player.MoveForward},
	{input.ActionMoveLeft, player.MoveLeft},
	{input.ActionMoveBackward, player.MoveBackward},
	{input.ActionMoveRight, player.MoveRight},
	{input.ActionMoveUp, player.MoveUp},
	{input.ActionMoveDown, player.MoveDown},
}

func heldMoves(im *input.Manager) player.Move {
	var m player.Move
	for _, a := range moveActions {
		if im.IsActive(a.action) {
			m |= a.move
		}
	}
	return m
}

func setupInputHandlers(window *glfw.Window, gl *GameLoop) {
	// Mouse look from the disabled (unbounded) cursor
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if gl.firstMouse {
			gl.lastX, gl.lastY = xpos, ypos
			gl.firstMouse = false
			return
		}
		gl.game.Player.Look(xpos-gl.lastX, ypos-gl.lastY)
		gl.lastX, gl.lastY = xpos, ypos
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		gl.input.HandleMouseButtonEvent(button, action)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		gl.input.HandleKeyEvent(key, action)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		// minimized
		if fbWidth == 0 || fbHeight == 0 {
			return
		}
		gl.game.Renderer.UpdateViewport(fbWidth, fbHeight)
		gl.game.Camera.SetViewport(fbWidth, fbHeight)
	})

	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if focused {
			gl.firstMouse = true
		}
	})
}
