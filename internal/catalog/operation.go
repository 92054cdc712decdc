package catalog

// Operation is the key of a math topic with its own generator.
type Operation string

// Basics.
const (
	OpCounting          Operation = "counting"
	OpNumberRecognition Operation = "number_recognition"
	OpComparingNumbers  Operation = "comparing_numbers"
	OpOrderingNumbers   Operation = "ordering_numbers"
	OpSkipCounting      Operation = "skip_counting"
	OpNumberBonds       Operation = "number_bonds"
	OpPlaceValue        Operation = "place_value"
	OpEvenOdd           Operation = "even_odd"
	OpBeforeAfter       Operation = "before_after"
	OpShapes2D          Operation = "shapes_2d"
	OpTellingTime       Operation = "telling_time"
	OpMoneyCounting     Operation = "money_counting"
	OpDoubles           Operation = "doubles"
	OpTensOnes          Operation = "tens_ones"
	OpPatterns          Operation = "patterns"
	OpRounding          Operation = "rounding"
	OpExpandedForm      Operation = "expanded_form"
	OpOrdinalNumbers    Operation = "ordinal_numbers"
	OpCalendar          Operation = "calendar"
	OpMeasurementLength Operation = "measurement_length"
)

// Core.
const (
	OpAddition              Operation = "addition"
	OpSubtraction           Operation = "subtraction"
	OpMultiplication        Operation = "multiplication"
	OpDivision              Operation = "division"
	OpDivisionRemainder     Operation = "division_remainder"
	OpMixedOperations       Operation = "mixed_operations"
	OpColumnAddition        Operation = "column_addition"
	OpSubtractionBorrowing  Operation = "subtraction_borrowing"
	OpTimesTables           Operation = "times_tables"
	OpFactFamilies          Operation = "fact_families"
	OpMissingAddend         Operation = "missing_addend"
	OpMissingFactor         Operation = "missing_factor"
	OpEstimation            Operation = "estimation"
	OpThreeAddends          Operation = "three_addends"
	OpMultiplyByPowersOfTen Operation = "multiply_by_powers_of_ten"
	OpLongDivision          Operation = "long_division"
	OpFractions             Operation = "fractions"
	OpFractionAddition      Operation = "fraction_addition"
	OpFractionSubtraction   Operation = "fraction_subtraction"
	OpEquivalentFractions   Operation = "equivalent_fractions"
	OpComparingFractions    Operation = "comparing_fractions"
	OpSimplifyFractions     Operation = "simplify_fractions"
	OpFractionOfNumber      Operation = "fraction_of_number"
	OpMixedNumbers          Operation = "mixed_numbers"
	OpDecimals              Operation = "decimals"
	OpDecimalSubtraction    Operation = "decimal_subtraction"
	OpDecimalMultiplication Operation = "decimal_multiplication"
	OpDecimalPlaceValue     Operation = "decimal_place_value"
	OpRoundingDecimals      Operation = "rounding_decimals"
	OpFractionsToDecimals   Operation = "fractions_to_decimals"
	OpPercentages           Operation = "percentages"
	OpFactors               Operation = "factors"
	OpMultiples             Operation = "multiples"
	OpPrimeNumbers          Operation = "prime_numbers"
	OpGCF                   Operation = "gcf"
	OpLCM                   Operation = "lcm"
	OpSquareNumbers         Operation = "square_numbers"
	OpSquareRoots           Operation = "square_roots"
	OpExponents             Operation = "exponents"
	OpOrderOfOperations     Operation = "order_of_operations"
	OpIntegerAddition       Operation = "integer_addition"
	OpIntegerSubtraction    Operation = "integer_subtraction"
	OpIntegerMultiplication Operation = "integer_multiplication"
	OpAbsoluteValue         Operation = "absolute_value"
	OpDivisibilityRules     Operation = "divisibility_rules"
)

// Advanced.
const (
	OpRatios                 Operation = "ratios"
	OpProportions            Operation = "proportions"
	OpUnitRates              Operation = "unit_rates"
	OpPercentChange          Operation = "percent_change"
	OpDiscounts              Operation = "discounts"
	OpSimpleInterest         Operation = "simple_interest"
	OpScientificNotation     Operation = "scientific_notation"
	OpFractionMultiplication Operation = "fraction_multiplication"
	OpFractionDivision       Operation = "fraction_division"
	OpMixedNumberAddition    Operation = "mixed_number_addition"
	OpDecimalDivision        Operation = "decimal_division"
	OpCubeNumbers            Operation = "cube_numbers"
	OpRomanNumerals          Operation = "roman_numerals"
	OpBinaryNumbers          Operation = "binary_numbers"
	OpMean                   Operation = "mean"
	OpMedian                 Operation = "median"
	OpMode                   Operation = "mode"
	OpRangeStats             Operation = "range_stats"
	OpProbability            Operation = "probability"
)

// Applied.
const (
	OpAreaPerimeter              Operation = "area_perimeter"
	OpAreaTriangle               Operation = "area_triangle"
	OpCircleArea                 Operation = "circle_area"
	OpCircumference              Operation = "circumference"
	OpVolume                     Operation = "volume"
	OpSurfaceArea                Operation = "surface_area"
	OpAngles                     Operation = "angles"
	OpTriangleAngles             Operation = "triangle_angles"
	OpGeometry                   Operation = "geometry"
	OpPythagorean                Operation = "pythagorean"
	OpCoordinates                Operation = "coordinates"
	OpUnitConversion             Operation = "unit_conversion"
	OpMetricConversion           Operation = "metric_conversion"
	OpTimeElapsed                Operation = "time_elapsed"
	OpMoneyChange                Operation = "money_change"
	OpWordProblems               Operation = "word_problems"
	OpMultiplicationWordProblems Operation = "multiplication_word_problems"
	OpDivisionWordProblems       Operation = "division_word_problems"
	OpReadingTables              Operation = "reading_tables"
	OpSpeedDistanceTime          Operation = "speed_distance_time"
)

// Algebra.
const (
	OpOneStepEquations     Operation = "one_step_equations"
	OpTwoStepEquations     Operation = "two_step_equations"
	OpEvaluateExpressions  Operation = "evaluate_expressions"
	OpInequalities         Operation = "inequalities"
	OpLinearPatterns       Operation = "linear_patterns"
	OpSlope                Operation = "slope"
	OpCombineLikeTerms     Operation = "combine_like_terms"
	OpDistributiveProperty Operation = "distributive_property"
	OpSystemsOfEquations   Operation = "systems_of_equations"
	OpFunctions            Operation = "functions"
)

// Challenge.
const (
	OpLogicPuzzles  Operation = "logic_puzzles"
	OpNumberPuzzles Operation = "number_puzzles"
	OpSequences     Operation = "sequences"
	OpMentalMath    Operation = "mental_math"
	OpBrainTeasers  Operation = "brain_teasers"
	OpDigitSum      Operation = "digit_sum"
	OpMagicSquares  Operation = "magic_squares"
)
