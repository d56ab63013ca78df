package biome

import "github.com/df-mc/terragen/populate"

type Plains struct {
	grassy
}

func (Plains) Populators() []populate.Populator {
	return []populate.Populator{populate.TallGrass{Amount: 12}}
}

func (Plains) ID() uint8 {
	return IDPlains
}

func (Plains) Name() string {
	return "plains"
}

func (Plains) Elevation() (min, max int) {
	return 63, 68
}

func (Plains) Temperature() float64 {
	return 0.8
}

func (Plains) Rainfall() float64 {
	return 0.4
}

type Desert struct {
	sandy
}

func (Desert) Populators() []populate.Populator {
	return nil
}

func (Desert) ID() uint8 {
	return IDDesert
}

func (Desert) Name() string {
	return "desert"
}

func (Desert) Elevation() (min, max int) {
	return 63, 74
}

func (Desert) Temperature() float64 {
	return 2.0
}

func (Desert) Rainfall() float64 {
	return 0.0
}

type IcePlains struct {
	snowy
}

func (IcePlains) Populators() []populate.Populator {
	return []populate.Populator{populate.TallGrass{Amount: 5}}
}

func (IcePlains) ID() uint8 {
	return IDIcePlains
}

func (IcePlains) Name() string {
	return "ice_plains"
}

func (IcePlains) Elevation() (min, max int) {
	return 63, 74
}

func (IcePlains) Temperature() float64 {
	return 0.05
}

func (IcePlains) Rainfall() float64 {
	return 0.8
}

type Mountains struct {
	grassy
}

func (Mountains) Populators() []populate.Populator {
	return nil
}

func (Mountains) ID() uint8 {
	return IDMountains
}

func (Mountains) Name() string {
	return "mountains"
}

func (Mountains) Elevation() (min, max int) {
	return 63, 127
}

func (Mountains) Temperature() float64 {
	return 0.4
}

func (Mountains) Rainfall() float64 {
	return 0.5
}

type SmallMountains struct {
	grassy
}

func (SmallMountains) Populators() []populate.Populator {
	return nil
}

func (SmallMountains) ID() uint8 {
	return IDSmallMountains
}

func (SmallMountains) Name() string {
	return "small_mountains"
}

func (SmallMountains) Elevation() (min, max int) {
	return 63, 97
}

func (SmallMountains) Temperature() float64 {
	return 0.4
}

func (SmallMountains) Rainfall() float64 {
	return 0.5
}
