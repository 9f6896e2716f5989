// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package xfile

import "fmt"

// AssetKind is the discriminant tag at the head of every asset descriptor.
// The full set is fixed by the original engine's enumeration; this core
// implements a decoder for a representative subset spanning every field
// shape named in spec §3. Every other recognized tag has a name here but no
// decoder, so kinds absent from this core still produce a deterministic
// UnknownAssetKind rather than silent corruption.
//
// Exact integer values mirror public documentation of the T5/BO1 asset
// table; no bit-exact original source was available to check them against
// (see DESIGN.md), so they should be read as "a closed, self-consistent
// enumeration", not as verified ground truth for every title build.
type AssetKind uint32

// Recognized asset kinds.
const (
	AssetKindXModelPieces AssetKind = iota
	AssetKindPhysPreset
	AssetKindPhysConstraints
	AssetKindDestructibleDef
	AssetKindXAnimParts
	AssetKindXModel
	AssetKindMaterial
	AssetKindTechniqueSet
	AssetKindImage
	AssetKindSound
	AssetKindSoundCurve
	AssetKindLoadedSound
	AssetKindClipMap
	AssetKindComWorld
	AssetKindGameWorldSP
	AssetKindGameWorldMP
	AssetKindMapEnts
	AssetKindGfxWorld
	AssetKindLightDef
	AssetKindFont
	AssetKindMenuList
	AssetKindMenu
	AssetKindLocalizeEntry
	AssetKindWeapon
	AssetKindSndDriverGlobals
	AssetKindFx
	AssetKindImpactFx
	AssetKindSurfaceFx
	AssetKindAITypeDef
	AssetKindMPType
	AssetKindCharacter
	AssetKindXModelAlias
	AssetKindRawFile
	AssetKindStringTable
	AssetKindLeaderboardDef
	AssetKindStructuredDataDef
	AssetKindTracerDef
	AssetKindVehicleDef
	AssetKindAddonMapEnts
	AssetKindEmblemSet
	AssetKindGlasses
	assetKindCount
)

var assetKindNames = map[AssetKind]string{
	AssetKindXModelPieces:      "xmodelpieces",
	AssetKindPhysPreset:        "physpreset",
	AssetKindPhysConstraints:   "physconstraints",
	AssetKindDestructibleDef:   "destructibledef",
	AssetKindXAnimParts:        "xanimparts",
	AssetKindXModel:            "xmodel",
	AssetKindMaterial:          "material",
	AssetKindTechniqueSet:      "techniqueset",
	AssetKindImage:             "image",
	AssetKindSound:             "sound",
	AssetKindSoundCurve:        "soundcurve",
	AssetKindLoadedSound:       "loadedsound",
	AssetKindClipMap:           "clipmap",
	AssetKindComWorld:          "comworld",
	AssetKindGameWorldSP:       "gameworldsp",
	AssetKindGameWorldMP:       "gameworldmp",
	AssetKindMapEnts:           "mapents",
	AssetKindGfxWorld:          "gfxworld",
	AssetKindLightDef:          "lightdef",
	AssetKindFont:              "font",
	AssetKindMenuList:          "menulist",
	AssetKindMenu:              "menu",
	AssetKindLocalizeEntry:     "localize",
	AssetKindWeapon:            "weapon",
	AssetKindSndDriverGlobals:  "snddriverglobals",
	AssetKindFx:                "fx",
	AssetKindImpactFx:          "impactfx",
	AssetKindSurfaceFx:         "surfacefx",
	AssetKindAITypeDef:         "aitype",
	AssetKindMPType:            "mptype",
	AssetKindCharacter:         "character",
	AssetKindXModelAlias:       "xmodelalias",
	AssetKindRawFile:           "rawfile",
	AssetKindStringTable:       "stringtable",
	AssetKindLeaderboardDef:    "leaderboarddef",
	AssetKindStructuredDataDef: "structureddatadef",
	AssetKindTracerDef:         "tracerdef",
	AssetKindVehicleDef:        "vehicledef",
	AssetKindAddonMapEnts:      "addonmapents",
	AssetKindEmblemSet:         "emblemset",
	AssetKindGlasses:           "glasses",
}

func (k AssetKind) String() string {
	if name, ok := assetKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(0x%x)", uint32(k))
}

// MaxLocalClients is the PC value of the MAX_LOCAL_CLIENTS platform
// constant: it sizes every fixed array the engine keys by local
// (splitscreen) client index. Decoders must read it from Options rather
// than hard-code it, so that a future non-PC target can override it.
const MaxLocalClients = 1

// Asset is one decoded entry in the produced asset list, in input order.
type Asset struct {
	Kind  AssetKind
	Name  string
	Value interface{}
}
