package cmd

import "github.com/posener/complete"

// PredictHedlFiles suggests *.hedl files for tab completion of file
// arguments.
func PredictHedlFiles() complete.Predictor {
	return complete.PredictFiles("*.hedl")
}

// PredictDirs suggests directories for tab completion of batch commands.
func PredictDirs() complete.Predictor {
	return complete.PredictDirs("*")
}
