package repository

// Export for testing
var NullableString = nullableString
var BoolToInt = boolToInt
var FormatTime = formatTime
var ParseTime = parseTime
