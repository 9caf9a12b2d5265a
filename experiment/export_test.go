package experiment

// ComputeStats_TestOnly exposes computeStats to experiment_test.
var ComputeStats_TestOnly = computeStats
