// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import "fmt"

// SndAlias is a named sound: sample rate, frame count, a per-local-client
// volume table and a raw PCM buffer. Compression/codec details are out of
// scope; the buffer is preserved verbatim.
type SndAlias struct {
	Name         string
	SampleRate   uint32
	FrameCount   uint32
	ClientVolume []float32
	PCM          []byte
}

func decodeSndAlias(d *Decoder, ctx *decodeContext) (interface{}, string, error) {
	ctx.push("SndAlias")
	defer ctx.pop()

	name, err := d.str(ctx, "name", "")
	if err != nil {
		return nil, "", err
	}
	sampleRate, err := d.u32(ctx, "sampleRate")
	if err != nil {
		return nil, "", err
	}
	frameCount, err := d.u32(ctx, "frameCount")
	if err != nil {
		return nil, "", err
	}

	// One volume scalar per local (splitscreen) client; sized by the
	// platform's MAX_LOCAL_CLIENTS, not a sibling length field (I5).
	clientVolume := make([]float32, d.opts.MaxLocalClients)
	for i := range clientVolume {
		ctx.push("clientVolume")
		v, err := d.f32(ctx, fmt.Sprintf("[%d]", i))
		ctx.pop()
		if err != nil {
			return nil, "", err
		}
		clientVolume[i] = v
	}

	dataLen, err := d.u32(ctx, "dataLen")
	if err != nil {
		return nil, "", err
	}
	pcm, _, err := d.readInlineBuffer(ctx, "pcm", dataLen)
	if err != nil {
		return nil, "", err
	}

	return &SndAlias{
		Name:         name,
		SampleRate:   sampleRate,
		FrameCount:   frameCount,
		ClientVolume: clientVolume,
		PCM:          pcm,
	}, name, nil
}
