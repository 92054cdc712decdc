package problemgen

import (
	"fmt"
	"slices"

	"github.com/abhisek/mathforge/internal/catalog"
)

// FallbackOperation is dispatched when an operation has no generator.
const FallbackOperation = catalog.OpAddition

var generators = map[catalog.Operation]Generator{
	// Basics
	catalog.OpCounting:          genCounting,
	catalog.OpNumberRecognition: genNumberRecognition,
	catalog.OpComparingNumbers:  genComparingNumbers,
	catalog.OpOrderingNumbers:   genOrderingNumbers,
	catalog.OpSkipCounting:      genSkipCounting,
	catalog.OpNumberBonds:       genNumberBonds,
	catalog.OpPlaceValue:        genPlaceValue,
	catalog.OpEvenOdd:           genEvenOdd,
	catalog.OpBeforeAfter:       genBeforeAfter,
	catalog.OpShapes2D:          genShapes2D,
	catalog.OpTellingTime:       genTellingTime,
	catalog.OpMoneyCounting:     genMoneyCounting,
	catalog.OpDoubles:           genDoubles,
	catalog.OpTensOnes:          genTensOnes,
	catalog.OpPatterns:          genPatterns,
	catalog.OpRounding:          genRounding,
	catalog.OpExpandedForm:      genExpandedForm,
	catalog.OpOrdinalNumbers:    genOrdinalNumbers,
	catalog.OpCalendar:          genCalendar,
	catalog.OpMeasurementLength: genMeasurementLength,
	// Core
	catalog.OpAddition:              genAddition,
	catalog.OpSubtraction:           genSubtraction,
	catalog.OpMultiplication:        genMultiplication,
	catalog.OpDivision:              genDivision,
	catalog.OpDivisionRemainder:     genDivisionRemainder,
	catalog.OpMixedOperations:       genMixedOperations,
	catalog.OpColumnAddition:        genColumnAddition,
	catalog.OpSubtractionBorrowing:  genSubtractionBorrowing,
	catalog.OpTimesTables:           genTimesTables,
	catalog.OpFactFamilies:          genFactFamilies,
	catalog.OpMissingAddend:         genMissingAddend,
	catalog.OpMissingFactor:         genMissingFactor,
	catalog.OpEstimation:            genEstimation,
	catalog.OpThreeAddends:          genThreeAddends,
	catalog.OpMultiplyByPowersOfTen: genMultiplyByPowersOfTen,
	catalog.OpLongDivision:          genLongDivision,
	catalog.OpFractions:             genFractions,
	catalog.OpFractionAddition:      genFractionAddition,
	catalog.OpFractionSubtraction:   genFractionSubtraction,
	catalog.OpEquivalentFractions:   genEquivalentFractions,
	catalog.OpComparingFractions:    genComparingFractions,
	catalog.OpSimplifyFractions:     genSimplifyFractions,
	catalog.OpFractionOfNumber:      genFractionOfNumber,
	catalog.OpMixedNumbers:          genMixedNumbers,
	catalog.OpDecimals:              genDecimals,
	catalog.OpDecimalSubtraction:    genDecimalSubtraction,
	catalog.OpDecimalMultiplication: genDecimalMultiplication,
	catalog.OpDecimalPlaceValue:     genDecimalPlaceValue,
	catalog.OpRoundingDecimals:      genRoundingDecimals,
	catalog.OpFractionsToDecimals:   genFractionsToDecimals,
	catalog.OpPercentages:           genPercentages,
	catalog.OpFactors:               genFactors,
	catalog.OpMultiples:             genMultiples,
	catalog.OpPrimeNumbers:          genPrimeNumbers,
	catalog.OpGCF:                   genGCF,
	catalog.OpLCM:                   genLCM,
	catalog.OpSquareNumbers:         genSquareNumbers,
	catalog.OpSquareRoots:           genSquareRoots,
	catalog.OpExponents:             genExponents,
	catalog.OpOrderOfOperations:     genOrderOfOperations,
	catalog.OpIntegerAddition:       genIntegerAddition,
	catalog.OpIntegerSubtraction:    genIntegerSubtraction,
	catalog.OpIntegerMultiplication: genIntegerMultiplication,
	catalog.OpAbsoluteValue:         genAbsoluteValue,
	catalog.OpDivisibilityRules:     genDivisibilityRules,
	// Advanced
	catalog.OpRatios:                 genRatios,
	catalog.OpProportions:            genProportions,
	catalog.OpUnitRates:              genUnitRates,
	catalog.OpPercentChange:          genPercentChange,
	catalog.OpDiscounts:              genDiscounts,
	catalog.OpSimpleInterest:         genSimpleInterest,
	catalog.OpScientificNotation:     genScientificNotation,
	catalog.OpFractionMultiplication: genFractionMultiplication,
	catalog.OpFractionDivision:       genFractionDivision,
	catalog.OpMixedNumberAddition:    genMixedNumberAddition,
	catalog.OpDecimalDivision:        genDecimalDivision,
	catalog.OpCubeNumbers:            genCubeNumbers,
	catalog.OpRomanNumerals:          genRomanNumerals,
	catalog.OpBinaryNumbers:          genBinaryNumbers,
	catalog.OpMean:                   genMean,
	catalog.OpMedian:                 genMedian,
	catalog.OpMode:                   genMode,
	catalog.OpRangeStats:             genRangeStats,
	catalog.OpProbability:            genProbability,
	// Applied
	catalog.OpAreaPerimeter:              genAreaPerimeter,
	catalog.OpAreaTriangle:               genAreaTriangle,
	catalog.OpCircleArea:                 genCircleArea,
	catalog.OpCircumference:              genCircumference,
	catalog.OpVolume:                     genVolume,
	catalog.OpSurfaceArea:                genSurfaceArea,
	catalog.OpAngles:                     genAngles,
	catalog.OpTriangleAngles:             genTriangleAngles,
	catalog.OpGeometry:                   genGeometry,
	catalog.OpPythagorean:                genPythagorean,
	catalog.OpCoordinates:                genCoordinates,
	catalog.OpUnitConversion:             genUnitConversion,
	catalog.OpMetricConversion:           genMetricConversion,
	catalog.OpTimeElapsed:                genTimeElapsed,
	catalog.OpMoneyChange:                genMoneyChange,
	catalog.OpWordProblems:               genWordProblems,
	catalog.OpMultiplicationWordProblems: genMultiplicationWordProblems,
	catalog.OpDivisionWordProblems:       genDivisionWordProblems,
	catalog.OpReadingTables:              genReadingTables,
	catalog.OpSpeedDistanceTime:          genSpeedDistanceTime,
	// Algebra
	catalog.OpOneStepEquations:     genOneStepEquations,
	catalog.OpTwoStepEquations:     genTwoStepEquations,
	catalog.OpEvaluateExpressions:  genEvaluateExpressions,
	catalog.OpInequalities:         genInequalities,
	catalog.OpLinearPatterns:       genLinearPatterns,
	catalog.OpSlope:                genSlope,
	catalog.OpCombineLikeTerms:     genCombineLikeTerms,
	catalog.OpDistributiveProperty: genDistributiveProperty,
	catalog.OpSystemsOfEquations:   genSystemsOfEquations,
	catalog.OpFunctions:            genFunctions,
	// Challenge
	catalog.OpLogicPuzzles:  genLogicPuzzles,
	catalog.OpNumberPuzzles: genNumberPuzzles,
	catalog.OpSequences:     genSequences,
	catalog.OpMentalMath:    genMentalMath,
	catalog.OpBrainTeasers:  genBrainTeasers,
	catalog.OpDigitSum:      genDigitSum,
	catalog.OpMagicSquares:  genMagicSquares,
}

// Dispatch returns the generator for op and the operation it actually
// serves. Unknown operations resolve to the addition generator.
func Dispatch(op catalog.Operation) (Generator, catalog.Operation) {
	if g, ok := generators[op]; ok {
		return g, op
	}
	return generators[FallbackOperation], FallbackOperation
}

// Operations returns every operation with a generator, sorted.
func Operations() []catalog.Operation {
	ops := make([]catalog.Operation, 0, len(generators))
	for op := range generators {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

// ValidateRegistry checks that generators and the catalog cover exactly the
// same operations.
func ValidateRegistry() error {
	for _, op := range catalog.AllOperations() {
		if _, ok := generators[op]; !ok {
			return fmt.Errorf("catalog operation %q has no generator", op)
		}
	}
	for op := range generators {
		if _, ok := catalog.Lookup(op); !ok {
			return fmt.Errorf("generator %q has no catalog metadata", op)
		}
	}
	return nil
}
