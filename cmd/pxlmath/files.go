package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"pxlmath"
)

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	return err == nil, err
}

// loadMatrix reads 16 whitespace-separated floats in row-major order.
func loadMatrix(path string) (pxlmath.Mat4, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pxlmath.Mat4{}, fmt.Errorf("failed to read matrix file: %w", err)
	}
	return parseMatrix(string(data))
}

func parseMatrix(text string) (pxlmath.Mat4, error) {
	var m pxlmath.Mat4
	fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
	if len(fields) != len(m) {
		return m, fmt.Errorf("matrix needs %d elements, got %d", len(m), len(fields))
	}
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return m, fmt.Errorf("matrix element %d: %w", i, err)
		}
		m[i] = float32(f)
	}
	return m, nil
}
