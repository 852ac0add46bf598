// Package classify converts the raw class histograms returned by the
// Earth-observation backend into the tabular form captured per region.
// It carries the class vocabularies of the supported datasets: MapBiomas
// land-cover classes and the consolidated Hansen/GLCLUC strata.
package classify

import "fmt"

// Supported dataset identifiers.
const (
	DatasetMapBiomas = "mapbiomas"
	DatasetHansen    = "hansen"
)

// mapbiomasLabels maps MapBiomas collection class ids to display names.
var mapbiomasLabels = map[int]string{
	1:  "Forest",
	3:  "Forest Formation",
	4:  "Savanna Formation",
	5:  "Mangrove",
	6:  "Floodable Forest",
	9:  "Forest Plantation",
	10: "Non Forest Natural Formation",
	11: "Wetland",
	12: "Grassland",
	15: "Pasture",
	18: "Agriculture",
	20: "Sugar Cane",
	21: "Mosaic of Uses",
	23: "Beach, Dune and Sand Spot",
	24: "Urban Area",
	25: "Other Non Vegetated Areas",
	29: "Rocky Outcrop",
	30: "Mining",
	32: "Hypersaline Tidal Flat",
	33: "River, Lake and Ocean",
	39: "Soybean",
	41: "Other Temporary Crops",
	46: "Coffee",
	47: "Citrus",
	48: "Other Perennial Crops",
	49: "Wooded Sandbank Vegetation",
	50: "Herbaceous Sandbank Vegetation",
}

// ClassName resolves a class id to its display name for the dataset.
// Unknown ids fall back to "Class {id}".
func ClassName(dataset string, classID int) string {
	switch dataset {
	case DatasetMapBiomas:
		if name, ok := mapbiomasLabels[classID]; ok {
			return name
		}
	case DatasetHansen:
		if name := hansenConsolidated(classID); name != "" {
			return name
		}
	}
	return fmt.Sprintf("Class %d", classID)
}

// hansenConsolidated folds the 256 Hansen strata into the consolidated
// classes. Ids 120-239 repeat the 0-119 cycle for areas inside the
// tree-cover-loss mask.
func hansenConsolidated(classID int) string {
	switch {
	case classID < 0 || classID > 255:
		return ""
	case classID >= 240 && classID <= 249:
		return "Built-up"
	case classID == 250:
		return "Water"
	case classID == 251:
		return "Ice"
	case classID == 252:
		return "Cropland"
	case classID == 253:
		return "" // not used
	case classID == 254:
		return "Ocean"
	case classID == 255:
		return "No Data"
	}

	id := classID
	if id >= 120 {
		id -= 120
	}
	switch {
	case id <= 5:
		return "Unvegetated"
	case id <= 50:
		return "Dense Short Vegetation"
	case id <= 74:
		return "Open Tree Cover"
	case id <= 91:
		return "Dense Tree Cover"
	case id <= 115:
		return "Tree Cover Gain"
	default:
		return "Tree Cover Loss"
	}
}
