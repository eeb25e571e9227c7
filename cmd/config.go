package cmd

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// InputParameters is the YAML run file read by the refine command,
// following the same shape/parse pattern as the teacher's
// cmd.InputParameters: a struct with yaml tags, parsed by Parse and
// echoed by Print before a run starts.
type InputParameters struct {
	Title      string  `yaml:"Title"`
	MeshFile   string  `yaml:"MeshFile"`
	OutputFile string  `yaml:"OutputFile"`
	LMax       float64 `yaml:"LMax"`
	Workers    int     `yaml:"Workers"`
	Partitions int     `yaml:"Partitions"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= MeshFile\n", ip.MeshFile)
	fmt.Printf("[%s]\t\t= OutputFile\n", ip.OutputFile)
	fmt.Printf("%8.5f\t\t= LMax\n", ip.LMax)
	fmt.Printf("%d\t\t\t= Workers\n", ip.Workers)
	fmt.Printf("%d\t\t\t= Partitions\n", ip.Partitions)
}
