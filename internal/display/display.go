// Package display owns the OS window: compiling the teacher's 2D-texture
// shader pair, uploading each rendered frame as a GL texture, and turning
// raw keyboard state into joypad button bits. It is the host side of the
// renderer collaborator described in spec §4.5 -- nes.RenderFrame does the
// pure pixel work, this package puts the result on screen.
package display

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/corvid-systems/nescore/nes"
)

const (
	vertexShader = `
  #version 330

  attribute vec3 position;
  attribute vec2 uv;
  varying vec2 vuv;
  void main(void){
    gl_Position = vec4(position, 1.0);
    vuv = uv;
  }
  ` + "\x00"

	fragmentShader = `
  #version 330

  varying vec2 vuv;
  uniform sampler2D texture;
  void main(void){
    gl_FragColor = texture2D(texture, vuv);
  }
  ` + "\x00"
)

var vertexPosition = []float32{
	1, 1,
	-1, 1,
	-1, -1,
	1, -1,
}
var vertexUV = []float32{
	1, 0,
	0, 0,
	0, 1,
	1, 1,
}

// compileShader compiles a single shader stage.
func compileShader(code string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	ccode := gl.Str(code)
	gl.ShaderSource(shader, 1, &ccode, nil)
	gl.CompileShader(shader)
	var result int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile a shader: %v\n %v", code, log)
	}
	return shader, nil
}

// newProgram links the vertex/fragment shader pair into a GL program.
func newProgram() (uint32, error) {
	vs, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var result int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link a program: %v", log)
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program, nil
}

// updateTexture uploads img as the 2D texture the fragment shader samples.
func updateTexture(program uint32, img *image.RGBA) {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Rect.Size().X), int32(img.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	positionLocation := uint32(gl.GetAttribLocation(program, gl.Str("position\x00")))
	uvLocation := uint32(gl.GetAttribLocation(program, gl.Str("uv\x00")))
	textureLocation := gl.GetUniformLocation(program, gl.Str("texture\x00"))
	gl.EnableVertexAttribArray(positionLocation)
	gl.EnableVertexAttribArray(uvLocation)
	gl.Uniform1i(textureLocation, 0)
	gl.VertexAttribPointer(positionLocation, 2, gl.FLOAT, false, 0, gl.Ptr(vertexPosition))
	gl.VertexAttribPointer(uvLocation, 2, gl.FLOAT, false, 0, gl.Ptr(vertexUV))
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}

// keys reads WASD+FGHJ as the standard controller, matching spec §4.4's
// A,B,Select,Start,Up,Down,Left,Right bit order.
func keys(window *glfw.Window) [8]bool {
	var k [8]bool
	k[nes.ButtonRight] = window.GetKey(glfw.KeyD) == glfw.Press
	k[nes.ButtonLeft] = window.GetKey(glfw.KeyA) == glfw.Press
	k[nes.ButtonDown] = window.GetKey(glfw.KeyS) == glfw.Press
	k[nes.ButtonUp] = window.GetKey(glfw.KeyW) == glfw.Press
	k[nes.ButtonStart] = window.GetKey(glfw.KeyG) == glfw.Press
	k[nes.ButtonSelect] = window.GetKey(glfw.KeyF) == glfw.Press
	k[nes.ButtonB] = window.GetKey(glfw.KeyH) == glfw.Press
	k[nes.ButtonA] = window.GetKey(glfw.KeyJ) == glfw.Press
	return k
}

// Window owns the glfw window and the GL program that renders a PPU
// frame to it.
type Window struct {
	win     *glfw.Window
	program uint32
}

// New creates and shows a window of the given size.
func New(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	program, err := newProgram()
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	gl.UseProgram(program)
	return &Window{win: win, program: program}, nil
}

// Close tears down the window and terminates glfw.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// FrameHandler returns the nes.FrameCallback (§6/§9's "callback-held
// mutable state") this window serves as: render the finished PPU state,
// push it to the GPU, swap buffers, pump the event loop, and refresh the
// joypad from the keyboard -- all synchronously, as the callback contract
// requires, before the CPU resumes.
func (w *Window) FrameHandler() nes.FrameCallback {
	return func(ppu *nes.PPU, joypad *nes.Joypad) {
		img := nes.RenderFrame(ppu)
		updateTexture(w.program, img)
		joypad.Set(keys(w.win))
		w.win.SwapBuffers()
		glfw.PollEvents()
	}
}

// MustNew is New, aborting the process on failure -- used at startup
// where there is no sensible way to continue without a window (§7's
// fatal-error policy extended to host-side setup).
func MustNew(width, height int, title string) *Window {
	w, err := New(width, height, title)
	if err != nil {
		glog.Fatalf("display: %v", err)
	}
	return w
}
