package catalog

func init() {
	r = buildRegistry(seedEntries())
}

// span returns the grade labels from..to inclusive.
func span(from, to string) []string {
	all := Grades()
	lo, hi := gradeIndex(from), gradeIndex(to)
	if lo < 0 || hi < lo {
		return nil
	}
	return append([]string(nil), all[lo:hi+1]...)
}

func tags(t ...string) []string { return t }

func seedEntries() []entry {
	return []entry{
		// Basics
		{OpCounting, Metadata{CategoryBasics, span("K", "1"), tags("counting", "number-sense")}},
		{OpNumberRecognition, Metadata{CategoryBasics, span("K", "2"), tags("number-sense", "reading-numbers")}},
		{OpComparingNumbers, Metadata{CategoryBasics, span("K", "2"), tags("comparison", "number-sense")}},
		{OpOrderingNumbers, Metadata{CategoryBasics, span("1", "3"), tags("comparison", "ordering")}},
		{OpSkipCounting, Metadata{CategoryBasics, span("1", "3"), tags("counting", "patterns")}},
		{OpNumberBonds, Metadata{CategoryBasics, span("K", "1"), tags("addition", "number-sense")}},
		{OpPlaceValue, Metadata{CategoryBasics, span("1", "4"), tags("place-value", "digits")}},
		{OpEvenOdd, Metadata{CategoryBasics, span("1", "2"), tags("number-sense", "parity")}},
		{OpBeforeAfter, Metadata{CategoryBasics, span("K", "1"), tags("counting", "number-line")}},
		{OpShapes2D, Metadata{CategoryBasics, span("K", "2"), tags("geometry", "shapes")}},
		{OpTellingTime, Metadata{CategoryBasics, span("1", "3"), tags("time", "measurement")}},
		{OpMoneyCounting, Metadata{CategoryBasics, span("1", "2"), tags("money", "counting")}},
		{OpDoubles, Metadata{CategoryBasics, span("K", "2"), tags("addition", "mental-math")}},
		{OpTensOnes, Metadata{CategoryBasics, span("1", "2"), tags("place-value", "base-ten")}},
		{OpPatterns, Metadata{CategoryBasics, span("K", "2"), tags("patterns", "reasoning")}},
		{OpRounding, Metadata{CategoryBasics, span("3", "4"), tags("rounding", "estimation", "place-value")}},
		{OpExpandedForm, Metadata{CategoryBasics, span("2", "4"), tags("place-value", "base-ten")}},
		{OpOrdinalNumbers, Metadata{CategoryBasics, span("K", "1"), tags("number-sense", "ordinals")}},
		{OpCalendar, Metadata{CategoryBasics, span("1", "2"), tags("time", "calendar")}},
		{OpMeasurementLength, Metadata{CategoryBasics, span("1", "2"), tags("measurement", "length")}},

		// Core
		{OpAddition, Metadata{CategoryCore, span("K", "3"), tags("addition", "arithmetic")}},
		{OpSubtraction, Metadata{CategoryCore, span("K", "3"), tags("subtraction", "arithmetic")}},
		{OpMultiplication, Metadata{CategoryCore, span("2", "5"), tags("multiplication", "arithmetic")}},
		{OpDivision, Metadata{CategoryCore, span("3", "5"), tags("division", "arithmetic")}},
		{OpDivisionRemainder, Metadata{CategoryCore, span("4", "5"), tags("division", "remainders")}},
		{OpMixedOperations, Metadata{CategoryCore, span("3", "5"), tags("arithmetic", "order-of-operations")}},
		{OpColumnAddition, Metadata{CategoryCore, span("2", "4"), tags("addition", "regrouping")}},
		{OpSubtractionBorrowing, Metadata{CategoryCore, span("2", "4"), tags("subtraction", "regrouping")}},
		{OpTimesTables, Metadata{CategoryCore, span("2", "4"), tags("multiplication", "facts")}},
		{OpFactFamilies, Metadata{CategoryCore, span("1", "3"), tags("addition", "subtraction", "facts")}},
		{OpMissingAddend, Metadata{CategoryCore, span("1", "3"), tags("addition", "unknowns")}},
		{OpMissingFactor, Metadata{CategoryCore, span("3", "4"), tags("multiplication", "unknowns")}},
		{OpEstimation, Metadata{CategoryCore, span("3", "5"), tags("estimation", "rounding")}},
		{OpThreeAddends, Metadata{CategoryCore, span("1", "3"), tags("addition", "arithmetic")}},
		{OpMultiplyByPowersOfTen, Metadata{CategoryCore, span("4", "5"), tags("multiplication", "place-value")}},
		{OpLongDivision, Metadata{CategoryCore, span("4", "6"), tags("division", "multi-digit")}},
		{OpFractions, Metadata{CategoryCore, span("2", "4"), tags("fractions", "parts-of-whole")}},
		{OpFractionAddition, Metadata{CategoryCore, span("4", "5"), tags("fractions", "addition")}},
		{OpFractionSubtraction, Metadata{CategoryCore, span("4", "5"), tags("fractions", "subtraction")}},
		{OpEquivalentFractions, Metadata{CategoryCore, span("3", "5"), tags("fractions", "equivalence")}},
		{OpComparingFractions, Metadata{CategoryCore, span("3", "5"), tags("fractions", "comparison")}},
		{OpSimplifyFractions, Metadata{CategoryCore, span("4", "6"), tags("fractions", "gcf")}},
		{OpFractionOfNumber, Metadata{CategoryCore, span("4", "6"), tags("fractions", "multiplication")}},
		{OpMixedNumbers, Metadata{CategoryCore, span("4", "5"), tags("fractions", "mixed-numbers")}},
		{OpDecimals, Metadata{CategoryCore, span("4", "6"), tags("decimals", "addition")}},
		{OpDecimalSubtraction, Metadata{CategoryCore, span("4", "6"), tags("decimals", "subtraction")}},
		{OpDecimalMultiplication, Metadata{CategoryCore, span("5", "6"), tags("decimals", "multiplication")}},
		{OpDecimalPlaceValue, Metadata{CategoryCore, span("4", "5"), tags("decimals", "place-value")}},
		{OpRoundingDecimals, Metadata{CategoryCore, span("5", "6"), tags("decimals", "rounding")}},
		{OpFractionsToDecimals, Metadata{CategoryCore, span("4", "6"), tags("fractions", "decimals", "conversion")}},
		{OpPercentages, Metadata{CategoryCore, span("6", "7"), tags("percent", "ratios")}},
		{OpFactors, Metadata{CategoryCore, span("4", "6"), tags("factors", "number-theory")}},
		{OpMultiples, Metadata{CategoryCore, span("4", "5"), tags("multiples", "number-theory")}},
		{OpPrimeNumbers, Metadata{CategoryCore, span("4", "6"), tags("primes", "number-theory")}},
		{OpGCF, Metadata{CategoryCore, span("6", "7"), tags("factors", "number-theory")}},
		{OpLCM, Metadata{CategoryCore, span("6", "7"), tags("multiples", "number-theory")}},
		{OpSquareNumbers, Metadata{CategoryCore, span("5", "7"), tags("exponents", "squares")}},
		{OpSquareRoots, Metadata{CategoryCore, span("7", "8"), tags("roots", "squares")}},
		{OpExponents, Metadata{CategoryCore, span("6", "8"), tags("exponents", "powers")}},
		{OpOrderOfOperations, Metadata{CategoryCore, span("5", "7"), tags("order-of-operations", "expressions")}},
		{OpIntegerAddition, Metadata{CategoryCore, span("6", "7"), tags("integers", "addition")}},
		{OpIntegerSubtraction, Metadata{CategoryCore, span("6", "7"), tags("integers", "subtraction")}},
		{OpIntegerMultiplication, Metadata{CategoryCore, span("7", "7"), tags("integers", "multiplication")}},
		{OpAbsoluteValue, Metadata{CategoryCore, span("6", "6"), tags("integers", "number-line")}},
		{OpDivisibilityRules, Metadata{CategoryCore, span("4", "6"), tags("division", "number-theory")}},

		// Advanced
		{OpRatios, Metadata{CategoryAdvanced, span("6", "7"), tags("ratios", "proportional-reasoning")}},
		{OpProportions, Metadata{CategoryAdvanced, span("7", "7"), tags("proportions", "proportional-reasoning")}},
		{OpUnitRates, Metadata{CategoryAdvanced, span("6", "7"), tags("rates", "proportional-reasoning")}},
		{OpPercentChange, Metadata{CategoryAdvanced, span("7", "8"), tags("percent", "change")}},
		{OpDiscounts, Metadata{CategoryAdvanced, span("7", "7"), tags("percent", "money")}},
		{OpSimpleInterest, Metadata{CategoryAdvanced, span("7", "8"), tags("percent", "money", "finance")}},
		{OpScientificNotation, Metadata{CategoryAdvanced, span("8", "8"), tags("exponents", "powers-of-ten")}},
		{OpFractionMultiplication, Metadata{CategoryAdvanced, span("5", "6"), tags("fractions", "multiplication")}},
		{OpFractionDivision, Metadata{CategoryAdvanced, span("6", "6"), tags("fractions", "division")}},
		{OpMixedNumberAddition, Metadata{CategoryAdvanced, span("5", "5"), tags("fractions", "mixed-numbers", "addition")}},
		{OpDecimalDivision, Metadata{CategoryAdvanced, span("6", "6"), tags("decimals", "division")}},
		{OpCubeNumbers, Metadata{CategoryAdvanced, span("6", "8"), tags("exponents", "cubes")}},
		{OpRomanNumerals, Metadata{CategoryAdvanced, span("4", "6"), tags("numeration", "history")}},
		{OpBinaryNumbers, Metadata{CategoryAdvanced, span("6", "8"), tags("numeration", "bases")}},
		{OpMean, Metadata{CategoryAdvanced, span("6", "7"), tags("statistics", "averages")}},
		{OpMedian, Metadata{CategoryAdvanced, span("6", "7"), tags("statistics", "averages")}},
		{OpMode, Metadata{CategoryAdvanced, span("6", "6"), tags("statistics", "data")}},
		{OpRangeStats, Metadata{CategoryAdvanced, span("6", "6"), tags("statistics", "data")}},
		{OpProbability, Metadata{CategoryAdvanced, span("7", "8"), tags("probability", "chance")}},

		// Applied
		{OpAreaPerimeter, Metadata{CategoryApplied, span("3", "5"), tags("geometry", "area", "perimeter")}},
		{OpAreaTriangle, Metadata{CategoryApplied, span("6", "6"), tags("geometry", "area")}},
		{OpCircleArea, Metadata{CategoryApplied, span("7", "7"), tags("geometry", "circles", "area")}},
		{OpCircumference, Metadata{CategoryApplied, span("7", "7"), tags("geometry", "circles")}},
		{OpVolume, Metadata{CategoryApplied, span("5", "6"), tags("geometry", "volume")}},
		{OpSurfaceArea, Metadata{CategoryApplied, span("6", "7"), tags("geometry", "surface-area")}},
		{OpAngles, Metadata{CategoryApplied, span("4", "7"), tags("geometry", "angles")}},
		{OpTriangleAngles, Metadata{CategoryApplied, span("5", "8"), tags("geometry", "angles", "triangles")}},
		{OpGeometry, Metadata{CategoryApplied, span("2", "5"), tags("geometry", "shapes")}},
		{OpPythagorean, Metadata{CategoryApplied, span("8", "8"), tags("geometry", "triangles", "roots")}},
		{OpCoordinates, Metadata{CategoryApplied, span("5", "6"), tags("geometry", "coordinate-plane")}},
		{OpUnitConversion, Metadata{CategoryApplied, span("4", "5"), tags("measurement", "conversion")}},
		{OpMetricConversion, Metadata{CategoryApplied, span("4", "6"), tags("measurement", "metric", "conversion")}},
		{OpTimeElapsed, Metadata{CategoryApplied, span("3", "4"), tags("time", "measurement")}},
		{OpMoneyChange, Metadata{CategoryApplied, span("2", "4"), tags("money", "subtraction")}},
		{OpWordProblems, Metadata{CategoryApplied, span("1", "4"), tags("word-problems", "addition", "subtraction")}},
		{OpMultiplicationWordProblems, Metadata{CategoryApplied, span("3", "5"), tags("word-problems", "multiplication")}},
		{OpDivisionWordProblems, Metadata{CategoryApplied, span("3", "5"), tags("word-problems", "division")}},
		{OpReadingTables, Metadata{CategoryApplied, span("2", "4"), tags("data", "tables")}},
		{OpSpeedDistanceTime, Metadata{CategoryApplied, span("6", "8"), tags("rates", "word-problems")}},

		// Algebra
		{OpOneStepEquations, Metadata{CategoryAlgebra, span("6", "7"), tags("equations", "variables")}},
		{OpTwoStepEquations, Metadata{CategoryAlgebra, span("7", "8"), tags("equations", "variables")}},
		{OpEvaluateExpressions, Metadata{CategoryAlgebra, span("6", "7"), tags("expressions", "variables")}},
		{OpInequalities, Metadata{CategoryAlgebra, span("6", "7"), tags("inequalities", "variables")}},
		{OpLinearPatterns, Metadata{CategoryAlgebra, span("5", "7"), tags("patterns", "sequences", "functions")}},
		{OpSlope, Metadata{CategoryAlgebra, span("8", "8"), tags("linear-functions", "coordinate-plane")}},
		{OpCombineLikeTerms, Metadata{CategoryAlgebra, span("7", "7"), tags("expressions", "simplifying")}},
		{OpDistributiveProperty, Metadata{CategoryAlgebra, span("6", "7"), tags("expressions", "properties")}},
		{OpSystemsOfEquations, Metadata{CategoryAlgebra, span("8", "8"), tags("equations", "systems")}},
		{OpFunctions, Metadata{CategoryAlgebra, span("8", "8"), tags("functions", "linear-functions")}},

		// Challenge
		{OpLogicPuzzles, Metadata{CategoryChallenge, span("3", "8"), tags("logic", "reasoning")}},
		{OpNumberPuzzles, Metadata{CategoryChallenge, span("4", "8"), tags("reasoning", "equations")}},
		{OpSequences, Metadata{CategoryChallenge, span("3", "8"), tags("patterns", "sequences")}},
		{OpMentalMath, Metadata{CategoryChallenge, span("2", "6"), tags("mental-math", "arithmetic")}},
		{OpBrainTeasers, Metadata{CategoryChallenge, span("3", "8"), tags("reasoning", "puzzles")}},
		{OpDigitSum, Metadata{CategoryChallenge, span("3", "6"), tags("digits", "number-sense")}},
		{OpMagicSquares, Metadata{CategoryChallenge, span("4", "8"), tags("reasoning", "addition")}},
	}
}
