package cmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"time"

	"github.com/notargets/gorefine/mesh"
	"github.com/notargets/gorefine/partition"
	"github.com/notargets/gorefine/refine"
	"github.com/notargets/gorefine/utils"
	"github.com/spf13/cobra"
)

// refineCmd represents the refine command
var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Refine a mesh once against a metric field, splitting every edge longer than LMax",
	Long:  `refine reads a GMF-style mesh file, runs one refinement pass that subdivides every edge longer than LMax under the mesh's metric field (the resulting child edges are not checked again), and writes the result out.`,
	Run: func(cmd *cobra.Command, args []string) {
		meshFile, _ := cmd.Flags().GetString("meshFile")
		configFile, _ := cmd.Flags().GetString("inputConditionsFile")
		lmax, _ := cmd.Flags().GetFloat64("lmax")
		workers, _ := cmd.Flags().GetInt("workers")

		ip := processRefineInput(meshFile, configFile, lmax, workers)
		if err := RunRefine(ip); err != nil {
			log.Fatalf("refine: %v", err)
		}
	},
}

func processRefineInput(meshFile, configFile string, lmax float64, workers int) *InputParameters {
	ip := &InputParameters{MeshFile: meshFile, LMax: lmax, Workers: workers}

	if configFile != "" {
		data, err := ioutil.ReadFile(configFile)
		if err != nil {
			panic(err)
		}
		if err := ip.Parse(data); err != nil {
			panic(err)
		}
		if meshFile != "" {
			ip.MeshFile = meshFile
		}
		if lmax > 0 {
			ip.LMax = lmax
		}
		if workers > 0 {
			ip.Workers = workers
		}
	}

	if ip.MeshFile == "" {
		fmt.Println("error: must supply a mesh file (-F, --meshFile) in GMF-like format")
		os.Exit(1)
	}
	if !(ip.LMax > 0) {
		fmt.Println("error: must supply a positive --lmax")
		os.Exit(1)
	}
	return ip
}

// RunRefine drives one end-to-end refinement pass: load, refine, save.
func RunRefine(ip *InputParameters) error {
	start := time.Now()

	f, err := os.Open(ip.MeshFile)
	if err != nil {
		return fmt.Errorf("opening mesh file: %w", err)
	}
	defer f.Close()

	m, err := mesh.ReadGMF(f, partition.Local{})
	if err != nil {
		return fmt.Errorf("reading mesh file: %w", err)
	}
	m.Freeze()
	m.CreateAdjacency()

	log.Printf("loaded mesh: %d vertices, %d elements, dim=%d", m.VertexCount(), m.ElementCount(), m.Dims())

	d, err := refine.NewDriver(m, nil, ip.Workers)
	if err != nil {
		return fmt.Errorf("constructing driver: %w", err)
	}

	if err := d.Refine(ip.LMax); err != nil {
		return fmt.Errorf("refining: %w", err)
	}

	log.Printf("refined mesh: %d vertices, %d elements (%.2fs), %s", m.VertexCount(), m.ElementCount(), time.Since(start).Seconds(), utils.GetMemUsage())

	out := ip.OutputFile
	if out == "" {
		out = ip.MeshFile + ".refined"
	}
	w, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer w.Close()

	if err := mesh.WriteGMF(w, m); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	log.Printf("wrote %s", out)
	return nil
}

func init() {
	rootCmd.AddCommand(refineCmd)
	refineCmd.Flags().StringP("meshFile", "F", "", "Mesh file to read in GMF-like format")
	refineCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for run parameters like LMax, Workers, Partitions")
	refineCmd.Flags().Float64P("lmax", "l", 0, "maximum allowed metric edge length")
	refineCmd.Flags().IntP("workers", "w", 0, "worker goroutine count (default GOMAXPROCS)")
}
