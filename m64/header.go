// This file is part of m64edit.
//
// m64edit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m64edit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m64edit.  If not, see <https://www.gnu.org/licenses/>.

package m64

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// HeaderSize is the size of the movie header in bytes. Frame data begins
// immediately after the header.
const HeaderSize = 0x400

// Signature is the value of the first four bytes of every movie file.
var Signature = []byte{0x4d, 0x36, 0x34, 0x1a}

// field offsets in the header. only numInputsOffset is interpreted by the
// codec. the others are for display only.
const (
	versionOffset         = 0x004
	uidOffset             = 0x008
	viCountOffset         = 0x00c
	rerecordsOffset       = 0x010
	viPerSecondOffset     = 0x014
	controllersOffset     = 0x015
	numInputsOffset       = 0x018
	startTypeOffset       = 0x01c
	controllerFlagsOffset = 0x020
	romNameOffset         = 0x0c4
	romCRCOffset          = 0x0e4
	countryOffset         = 0x0e8
	videoPluginOffset     = 0x122
	audioPluginOffset     = 0x162
	inputPluginOffset     = 0x1a2
	rspPluginOffset       = 0x1e2
	authorOffset          = 0x222
	descriptionOffset     = 0x300
)

const (
	romNameLen     = 32
	pluginNameLen  = 64
	authorLen      = 222
	descriptionLen = 256
)

// StartType says how the emulator state is prepared before playback.
type StartType uint16

// List of valid StartType values.
const (
	StartFromSnapshot StartType = 1
	StartFromPowerOn  StartType = 2
	StartFromEEPROM   StartType = 4
)

func (st StartType) String() string {
	switch st {
	case StartFromSnapshot:
		return "snapshot"
	case StartFromPowerOn:
		return "power-on"
	case StartFromEEPROM:
		return "eeprom"
	}
	return fmt.Sprintf("unknown (%d)", uint16(st))
}

// Header is the fixed size block at the start of a movie file. Apart from the
// signature and the declared input count the content of the header is opaque
// and is written back exactly as it was read.
type Header struct {
	data [HeaderSize]byte
}

// NewHeader returns the header used for a new movie: power-on start, one
// controller, 60 VIs per second.
func NewHeader() Header {
	var h Header
	h.Clear()
	return h
}

// Clear sets the header to the default state used for new movies.
func (h *Header) Clear() {
	h.data = [HeaderSize]byte{}
	copy(h.data[:], Signature)
	binary.LittleEndian.PutUint32(h.data[versionOffset:], 3)
	h.data[viPerSecondOffset] = 60
	h.data[controllersOffset] = 1
	binary.LittleEndian.PutUint16(h.data[startTypeOffset:], uint16(StartFromPowerOn))
	binary.LittleEndian.PutUint32(h.data[controllerFlagsOffset:], 1)
}

// Bytes returns a copy of the encoded header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b, h.data[:])
	return b
}

// HasSignature returns true if the slice begins with the movie signature.
func HasSignature(b []byte) bool {
	return bytes.HasPrefix(b, Signature)
}

// NumInputs is the number of input samples the header declares.
func (h Header) NumInputs() int {
	return int(binary.LittleEndian.Uint32(h.data[numInputsOffset:]))
}

func (h *Header) setNumInputs(n int) {
	binary.LittleEndian.PutUint32(h.data[numInputsOffset:], uint32(n))
}

// Version of the movie format.
func (h Header) Version() uint32 {
	return binary.LittleEndian.Uint32(h.data[versionOffset:])
}

// UID is the movie identifier. By convention the time of recording.
func (h Header) UID() uint32 {
	return binary.LittleEndian.Uint32(h.data[uidOffset:])
}

// VICount is the number of vertical interrupts in the movie.
func (h Header) VICount() uint32 {
	return binary.LittleEndian.Uint32(h.data[viCountOffset:])
}

// Rerecords is the rerecord count.
func (h Header) Rerecords() uint32 {
	return binary.LittleEndian.Uint32(h.data[rerecordsOffset:])
}

// VIsPerSecond is 60 for NTSC and 50 for PAL.
func (h Header) VIsPerSecond() int {
	return int(h.data[viPerSecondOffset])
}

// Controllers is the number of controllers.
func (h Header) Controllers() int {
	return int(h.data[controllersOffset])
}

// StartType of the movie.
func (h Header) StartType() StartType {
	return StartType(binary.LittleEndian.Uint16(h.data[startTypeOffset:]))
}

// ControllerFlags says which controllers are present and what is plugged into
// them.
func (h Header) ControllerFlags() uint32 {
	return binary.LittleEndian.Uint32(h.data[controllerFlagsOffset:])
}

// ROMName is the internal name of the ROM the movie was recorded with.
func (h Header) ROMName() string {
	return h.text(romNameOffset, romNameLen)
}

// ROMCRC is the CRC32 of the ROM the movie was recorded with.
func (h Header) ROMCRC() uint32 {
	return binary.LittleEndian.Uint32(h.data[romCRCOffset:])
}

// Country code of the ROM.
func (h Header) Country() uint16 {
	return binary.LittleEndian.Uint16(h.data[countryOffset:])
}

// Plugins returns the names of the video, audio, input and RSP plugins.
func (h Header) Plugins() (video, audio, input, rsp string) {
	return h.text(videoPluginOffset, pluginNameLen),
		h.text(audioPluginOffset, pluginNameLen),
		h.text(inputPluginOffset, pluginNameLen),
		h.text(rspPluginOffset, pluginNameLen)
}

// Author of the movie.
func (h Header) Author() string {
	return h.text(authorOffset, authorLen)
}

// Description of the movie.
func (h Header) Description() string {
	return h.text(descriptionOffset, descriptionLen)
}

// text fields are zero padded.
func (h Header) text(offset, length int) string {
	b := h.data[offset : offset+length]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("version: %d\n", h.Version()))
	s.WriteString(fmt.Sprintf("uid: %#08x\n", h.UID()))
	s.WriteString(fmt.Sprintf("rom: %s (crc %#08x, country %#04x)\n", h.ROMName(), h.ROMCRC(), h.Country()))
	s.WriteString(fmt.Sprintf("start: %s\n", h.StartType()))
	s.WriteString(fmt.Sprintf("controllers: %d (flags %#08x)\n", h.Controllers(), h.ControllerFlags()))
	s.WriteString(fmt.Sprintf("vi: %d (%d per second)\n", h.VICount(), h.VIsPerSecond()))
	s.WriteString(fmt.Sprintf("inputs: %d\n", h.NumInputs()))
	s.WriteString(fmt.Sprintf("rerecords: %d\n", h.Rerecords()))
	video, audio, input, rsp := h.Plugins()
	s.WriteString(fmt.Sprintf("plugins: %s, %s, %s, %s\n", video, audio, input, rsp))
	s.WriteString(fmt.Sprintf("author: %s\n", h.Author()))
	s.WriteString(fmt.Sprintf("description: %s", h.Description()))
	return s.String()
}
