package capacity

import "github.com/j4ncp/qr-gen/ecclevel"

// standardRows is the full 40-version x 4-ECC-level Standard capacity table,
// derived from the teacher's ECC_CODEWORDS_PER_BLOCK / NUM_ERROR_CORRECTION_BLOCKS
// tables (qrcodegen.go) plus the raw-data-module formula, cross-checked against
// original_source/src/tables.rs for versions 1-14 and against the standard's
// published v40-L maximum character capacities (7089/4296/2953/1817).
var standardRows = []standardEntry{
	{size: 1, ecc: ecclevel.L, dataBits: 152, numeric: 41, alphanumeric: 25, bytesCap: 17, kanji: 10, g1Blocks: 1, g1Codewords: 26, g1Data: 19, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 1, ecc: ecclevel.M, dataBits: 128, numeric: 34, alphanumeric: 20, bytesCap: 14, kanji: 8, g1Blocks: 1, g1Codewords: 26, g1Data: 16, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 1, ecc: ecclevel.Q, dataBits: 104, numeric: 27, alphanumeric: 16, bytesCap: 11, kanji: 7, g1Blocks: 1, g1Codewords: 26, g1Data: 13, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 1, ecc: ecclevel.H, dataBits: 72, numeric: 17, alphanumeric: 10, bytesCap: 7, kanji: 4, g1Blocks: 1, g1Codewords: 26, g1Data: 9, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 2, ecc: ecclevel.L, dataBits: 272, numeric: 77, alphanumeric: 47, bytesCap: 32, kanji: 20, g1Blocks: 1, g1Codewords: 44, g1Data: 34, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 2, ecc: ecclevel.M, dataBits: 224, numeric: 63, alphanumeric: 38, bytesCap: 26, kanji: 16, g1Blocks: 1, g1Codewords: 44, g1Data: 28, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 2, ecc: ecclevel.Q, dataBits: 176, numeric: 48, alphanumeric: 29, bytesCap: 20, kanji: 12, g1Blocks: 1, g1Codewords: 44, g1Data: 22, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 2, ecc: ecclevel.H, dataBits: 128, numeric: 34, alphanumeric: 20, bytesCap: 14, kanji: 8, g1Blocks: 1, g1Codewords: 44, g1Data: 16, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 3, ecc: ecclevel.L, dataBits: 440, numeric: 127, alphanumeric: 77, bytesCap: 53, kanji: 32, g1Blocks: 1, g1Codewords: 70, g1Data: 55, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 3, ecc: ecclevel.M, dataBits: 352, numeric: 101, alphanumeric: 61, bytesCap: 42, kanji: 26, g1Blocks: 1, g1Codewords: 70, g1Data: 44, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 3, ecc: ecclevel.Q, dataBits: 272, numeric: 77, alphanumeric: 47, bytesCap: 32, kanji: 20, g1Blocks: 2, g1Codewords: 35, g1Data: 17, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 3, ecc: ecclevel.H, dataBits: 208, numeric: 58, alphanumeric: 35, bytesCap: 24, kanji: 15, g1Blocks: 2, g1Codewords: 35, g1Data: 13, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 4, ecc: ecclevel.L, dataBits: 640, numeric: 187, alphanumeric: 114, bytesCap: 78, kanji: 48, g1Blocks: 1, g1Codewords: 100, g1Data: 80, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 4, ecc: ecclevel.M, dataBits: 512, numeric: 149, alphanumeric: 90, bytesCap: 62, kanji: 38, g1Blocks: 2, g1Codewords: 50, g1Data: 32, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 4, ecc: ecclevel.Q, dataBits: 384, numeric: 111, alphanumeric: 67, bytesCap: 46, kanji: 28, g1Blocks: 2, g1Codewords: 50, g1Data: 24, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 4, ecc: ecclevel.H, dataBits: 288, numeric: 82, alphanumeric: 50, bytesCap: 34, kanji: 21, g1Blocks: 4, g1Codewords: 25, g1Data: 9, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 5, ecc: ecclevel.L, dataBits: 864, numeric: 255, alphanumeric: 154, bytesCap: 106, kanji: 65, g1Blocks: 1, g1Codewords: 134, g1Data: 108, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 5, ecc: ecclevel.M, dataBits: 688, numeric: 202, alphanumeric: 122, bytesCap: 84, kanji: 52, g1Blocks: 2, g1Codewords: 67, g1Data: 43, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 5, ecc: ecclevel.Q, dataBits: 496, numeric: 144, alphanumeric: 87, bytesCap: 60, kanji: 37, g1Blocks: 2, g1Codewords: 33, g1Data: 15, g2Blocks: 2, g2Codewords: 34, g2Data: 16},
	{size: 5, ecc: ecclevel.H, dataBits: 368, numeric: 106, alphanumeric: 64, bytesCap: 44, kanji: 27, g1Blocks: 2, g1Codewords: 33, g1Data: 11, g2Blocks: 2, g2Codewords: 34, g2Data: 12},
	{size: 6, ecc: ecclevel.L, dataBits: 1088, numeric: 322, alphanumeric: 195, bytesCap: 134, kanji: 82, g1Blocks: 2, g1Codewords: 86, g1Data: 68, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 6, ecc: ecclevel.M, dataBits: 864, numeric: 255, alphanumeric: 154, bytesCap: 106, kanji: 65, g1Blocks: 4, g1Codewords: 43, g1Data: 27, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 6, ecc: ecclevel.Q, dataBits: 608, numeric: 178, alphanumeric: 108, bytesCap: 74, kanji: 45, g1Blocks: 4, g1Codewords: 43, g1Data: 19, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 6, ecc: ecclevel.H, dataBits: 480, numeric: 139, alphanumeric: 84, bytesCap: 58, kanji: 36, g1Blocks: 4, g1Codewords: 43, g1Data: 15, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 7, ecc: ecclevel.L, dataBits: 1248, numeric: 370, alphanumeric: 224, bytesCap: 154, kanji: 95, g1Blocks: 2, g1Codewords: 98, g1Data: 78, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 7, ecc: ecclevel.M, dataBits: 992, numeric: 293, alphanumeric: 178, bytesCap: 122, kanji: 75, g1Blocks: 4, g1Codewords: 49, g1Data: 31, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 7, ecc: ecclevel.Q, dataBits: 704, numeric: 207, alphanumeric: 125, bytesCap: 86, kanji: 53, g1Blocks: 2, g1Codewords: 32, g1Data: 14, g2Blocks: 4, g2Codewords: 33, g2Data: 15},
	{size: 7, ecc: ecclevel.H, dataBits: 528, numeric: 154, alphanumeric: 93, bytesCap: 64, kanji: 39, g1Blocks: 4, g1Codewords: 39, g1Data: 13, g2Blocks: 1, g2Codewords: 40, g2Data: 14},
	{size: 8, ecc: ecclevel.L, dataBits: 1552, numeric: 461, alphanumeric: 279, bytesCap: 192, kanji: 118, g1Blocks: 2, g1Codewords: 121, g1Data: 97, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 8, ecc: ecclevel.M, dataBits: 1232, numeric: 365, alphanumeric: 221, bytesCap: 152, kanji: 93, g1Blocks: 2, g1Codewords: 60, g1Data: 38, g2Blocks: 2, g2Codewords: 61, g2Data: 39},
	{size: 8, ecc: ecclevel.Q, dataBits: 880, numeric: 259, alphanumeric: 157, bytesCap: 108, kanji: 66, g1Blocks: 4, g1Codewords: 40, g1Data: 18, g2Blocks: 2, g2Codewords: 41, g2Data: 19},
	{size: 8, ecc: ecclevel.H, dataBits: 688, numeric: 202, alphanumeric: 122, bytesCap: 84, kanji: 52, g1Blocks: 4, g1Codewords: 40, g1Data: 14, g2Blocks: 2, g2Codewords: 41, g2Data: 15},
	{size: 9, ecc: ecclevel.L, dataBits: 1856, numeric: 552, alphanumeric: 335, bytesCap: 230, kanji: 141, g1Blocks: 2, g1Codewords: 146, g1Data: 116, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 9, ecc: ecclevel.M, dataBits: 1456, numeric: 432, alphanumeric: 262, bytesCap: 180, kanji: 111, g1Blocks: 3, g1Codewords: 58, g1Data: 36, g2Blocks: 2, g2Codewords: 59, g2Data: 37},
	{size: 9, ecc: ecclevel.Q, dataBits: 1056, numeric: 312, alphanumeric: 189, bytesCap: 130, kanji: 80, g1Blocks: 4, g1Codewords: 36, g1Data: 16, g2Blocks: 4, g2Codewords: 37, g2Data: 17},
	{size: 9, ecc: ecclevel.H, dataBits: 800, numeric: 235, alphanumeric: 143, bytesCap: 98, kanji: 60, g1Blocks: 4, g1Codewords: 36, g1Data: 12, g2Blocks: 4, g2Codewords: 37, g2Data: 13},
	{size: 10, ecc: ecclevel.L, dataBits: 2192, numeric: 652, alphanumeric: 395, bytesCap: 271, kanji: 167, g1Blocks: 2, g1Codewords: 86, g1Data: 68, g2Blocks: 2, g2Codewords: 87, g2Data: 69},
	{size: 10, ecc: ecclevel.M, dataBits: 1728, numeric: 513, alphanumeric: 311, bytesCap: 213, kanji: 131, g1Blocks: 4, g1Codewords: 69, g1Data: 43, g2Blocks: 1, g2Codewords: 70, g2Data: 44},
	{size: 10, ecc: ecclevel.Q, dataBits: 1232, numeric: 364, alphanumeric: 221, bytesCap: 151, kanji: 93, g1Blocks: 6, g1Codewords: 43, g1Data: 19, g2Blocks: 2, g2Codewords: 44, g2Data: 20},
	{size: 10, ecc: ecclevel.H, dataBits: 976, numeric: 288, alphanumeric: 174, bytesCap: 119, kanji: 74, g1Blocks: 6, g1Codewords: 43, g1Data: 15, g2Blocks: 2, g2Codewords: 44, g2Data: 16},
	{size: 11, ecc: ecclevel.L, dataBits: 2592, numeric: 772, alphanumeric: 468, bytesCap: 321, kanji: 198, g1Blocks: 4, g1Codewords: 101, g1Data: 81, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 11, ecc: ecclevel.M, dataBits: 2032, numeric: 604, alphanumeric: 366, bytesCap: 251, kanji: 155, g1Blocks: 1, g1Codewords: 80, g1Data: 50, g2Blocks: 4, g2Codewords: 81, g2Data: 51},
	{size: 11, ecc: ecclevel.Q, dataBits: 1440, numeric: 427, alphanumeric: 259, bytesCap: 177, kanji: 109, g1Blocks: 4, g1Codewords: 50, g1Data: 22, g2Blocks: 4, g2Codewords: 51, g2Data: 23},
	{size: 11, ecc: ecclevel.H, dataBits: 1120, numeric: 331, alphanumeric: 200, bytesCap: 137, kanji: 85, g1Blocks: 3, g1Codewords: 36, g1Data: 12, g2Blocks: 8, g2Codewords: 37, g2Data: 13},
	{size: 12, ecc: ecclevel.L, dataBits: 2960, numeric: 883, alphanumeric: 535, bytesCap: 367, kanji: 226, g1Blocks: 2, g1Codewords: 116, g1Data: 92, g2Blocks: 2, g2Codewords: 117, g2Data: 93},
	{size: 12, ecc: ecclevel.M, dataBits: 2320, numeric: 691, alphanumeric: 419, bytesCap: 287, kanji: 177, g1Blocks: 6, g1Codewords: 58, g1Data: 36, g2Blocks: 2, g2Codewords: 59, g2Data: 37},
	{size: 12, ecc: ecclevel.Q, dataBits: 1648, numeric: 489, alphanumeric: 296, bytesCap: 203, kanji: 125, g1Blocks: 4, g1Codewords: 46, g1Data: 20, g2Blocks: 6, g2Codewords: 47, g2Data: 21},
	{size: 12, ecc: ecclevel.H, dataBits: 1264, numeric: 374, alphanumeric: 227, bytesCap: 155, kanji: 96, g1Blocks: 7, g1Codewords: 42, g1Data: 14, g2Blocks: 4, g2Codewords: 43, g2Data: 15},
	{size: 13, ecc: ecclevel.L, dataBits: 3424, numeric: 1022, alphanumeric: 619, bytesCap: 425, kanji: 262, g1Blocks: 4, g1Codewords: 133, g1Data: 107, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 13, ecc: ecclevel.M, dataBits: 2672, numeric: 796, alphanumeric: 483, bytesCap: 331, kanji: 204, g1Blocks: 8, g1Codewords: 59, g1Data: 37, g2Blocks: 1, g2Codewords: 60, g2Data: 38},
	{size: 13, ecc: ecclevel.Q, dataBits: 1952, numeric: 580, alphanumeric: 352, bytesCap: 241, kanji: 149, g1Blocks: 8, g1Codewords: 44, g1Data: 20, g2Blocks: 4, g2Codewords: 45, g2Data: 21},
	{size: 13, ecc: ecclevel.H, dataBits: 1440, numeric: 427, alphanumeric: 259, bytesCap: 177, kanji: 109, g1Blocks: 12, g1Codewords: 33, g1Data: 11, g2Blocks: 4, g2Codewords: 34, g2Data: 12},
	{size: 14, ecc: ecclevel.L, dataBits: 3688, numeric: 1101, alphanumeric: 667, bytesCap: 458, kanji: 282, g1Blocks: 3, g1Codewords: 145, g1Data: 115, g2Blocks: 1, g2Codewords: 146, g2Data: 116},
	{size: 14, ecc: ecclevel.M, dataBits: 2920, numeric: 871, alphanumeric: 528, bytesCap: 362, kanji: 223, g1Blocks: 4, g1Codewords: 64, g1Data: 40, g2Blocks: 5, g2Codewords: 65, g2Data: 41},
	{size: 14, ecc: ecclevel.Q, dataBits: 2088, numeric: 621, alphanumeric: 376, bytesCap: 258, kanji: 159, g1Blocks: 11, g1Codewords: 36, g1Data: 16, g2Blocks: 5, g2Codewords: 37, g2Data: 17},
	{size: 14, ecc: ecclevel.H, dataBits: 1576, numeric: 468, alphanumeric: 283, bytesCap: 194, kanji: 120, g1Blocks: 11, g1Codewords: 36, g1Data: 12, g2Blocks: 5, g2Codewords: 37, g2Data: 13},
	{size: 15, ecc: ecclevel.L, dataBits: 4184, numeric: 1250, alphanumeric: 758, bytesCap: 520, kanji: 320, g1Blocks: 5, g1Codewords: 109, g1Data: 87, g2Blocks: 1, g2Codewords: 110, g2Data: 88},
	{size: 15, ecc: ecclevel.M, dataBits: 3320, numeric: 991, alphanumeric: 600, bytesCap: 412, kanji: 254, g1Blocks: 5, g1Codewords: 65, g1Data: 41, g2Blocks: 5, g2Codewords: 66, g2Data: 42},
	{size: 15, ecc: ecclevel.Q, dataBits: 2360, numeric: 703, alphanumeric: 426, bytesCap: 292, kanji: 180, g1Blocks: 5, g1Codewords: 54, g1Data: 24, g2Blocks: 7, g2Codewords: 55, g2Data: 25},
	{size: 15, ecc: ecclevel.H, dataBits: 1784, numeric: 530, alphanumeric: 321, bytesCap: 220, kanji: 136, g1Blocks: 11, g1Codewords: 36, g1Data: 12, g2Blocks: 7, g2Codewords: 37, g2Data: 13},
	{size: 16, ecc: ecclevel.L, dataBits: 4712, numeric: 1408, alphanumeric: 854, bytesCap: 586, kanji: 361, g1Blocks: 5, g1Codewords: 122, g1Data: 98, g2Blocks: 1, g2Codewords: 123, g2Data: 99},
	{size: 16, ecc: ecclevel.M, dataBits: 3624, numeric: 1082, alphanumeric: 656, bytesCap: 450, kanji: 277, g1Blocks: 7, g1Codewords: 73, g1Data: 45, g2Blocks: 3, g2Codewords: 74, g2Data: 46},
	{size: 16, ecc: ecclevel.Q, dataBits: 2600, numeric: 775, alphanumeric: 470, bytesCap: 322, kanji: 198, g1Blocks: 15, g1Codewords: 43, g1Data: 19, g2Blocks: 2, g2Codewords: 44, g2Data: 20},
	{size: 16, ecc: ecclevel.H, dataBits: 2024, numeric: 602, alphanumeric: 365, bytesCap: 250, kanji: 154, g1Blocks: 3, g1Codewords: 45, g1Data: 15, g2Blocks: 13, g2Codewords: 46, g2Data: 16},
	{size: 17, ecc: ecclevel.L, dataBits: 5176, numeric: 1548, alphanumeric: 938, bytesCap: 644, kanji: 397, g1Blocks: 1, g1Codewords: 135, g1Data: 107, g2Blocks: 5, g2Codewords: 136, g2Data: 108},
	{size: 17, ecc: ecclevel.M, dataBits: 4056, numeric: 1212, alphanumeric: 734, bytesCap: 504, kanji: 310, g1Blocks: 10, g1Codewords: 74, g1Data: 46, g2Blocks: 1, g2Codewords: 75, g2Data: 47},
	{size: 17, ecc: ecclevel.Q, dataBits: 2936, numeric: 876, alphanumeric: 531, bytesCap: 364, kanji: 224, g1Blocks: 1, g1Codewords: 50, g1Data: 22, g2Blocks: 15, g2Codewords: 51, g2Data: 23},
	{size: 17, ecc: ecclevel.H, dataBits: 2264, numeric: 674, alphanumeric: 408, bytesCap: 280, kanji: 173, g1Blocks: 2, g1Codewords: 42, g1Data: 14, g2Blocks: 17, g2Codewords: 43, g2Data: 15},
	{size: 18, ecc: ecclevel.L, dataBits: 5768, numeric: 1725, alphanumeric: 1046, bytesCap: 718, kanji: 442, g1Blocks: 5, g1Codewords: 150, g1Data: 120, g2Blocks: 1, g2Codewords: 151, g2Data: 121},
	{size: 18, ecc: ecclevel.M, dataBits: 4504, numeric: 1346, alphanumeric: 816, bytesCap: 560, kanji: 345, g1Blocks: 9, g1Codewords: 69, g1Data: 43, g2Blocks: 4, g2Codewords: 70, g2Data: 44},
	{size: 18, ecc: ecclevel.Q, dataBits: 3176, numeric: 948, alphanumeric: 574, bytesCap: 394, kanji: 243, g1Blocks: 17, g1Codewords: 50, g1Data: 22, g2Blocks: 1, g2Codewords: 51, g2Data: 23},
	{size: 18, ecc: ecclevel.H, dataBits: 2504, numeric: 746, alphanumeric: 452, bytesCap: 310, kanji: 191, g1Blocks: 2, g1Codewords: 42, g1Data: 14, g2Blocks: 19, g2Codewords: 43, g2Data: 15},
	{size: 19, ecc: ecclevel.L, dataBits: 6360, numeric: 1903, alphanumeric: 1153, bytesCap: 792, kanji: 488, g1Blocks: 3, g1Codewords: 141, g1Data: 113, g2Blocks: 4, g2Codewords: 142, g2Data: 114},
	{size: 19, ecc: ecclevel.M, dataBits: 5016, numeric: 1500, alphanumeric: 909, bytesCap: 624, kanji: 384, g1Blocks: 3, g1Codewords: 70, g1Data: 44, g2Blocks: 11, g2Codewords: 71, g2Data: 45},
	{size: 19, ecc: ecclevel.Q, dataBits: 3560, numeric: 1063, alphanumeric: 644, bytesCap: 442, kanji: 272, g1Blocks: 17, g1Codewords: 47, g1Data: 21, g2Blocks: 4, g2Codewords: 48, g2Data: 22},
	{size: 19, ecc: ecclevel.H, dataBits: 2728, numeric: 813, alphanumeric: 493, bytesCap: 338, kanji: 208, g1Blocks: 9, g1Codewords: 39, g1Data: 13, g2Blocks: 16, g2Codewords: 40, g2Data: 14},
	{size: 20, ecc: ecclevel.L, dataBits: 6888, numeric: 2061, alphanumeric: 1249, bytesCap: 858, kanji: 528, g1Blocks: 3, g1Codewords: 135, g1Data: 107, g2Blocks: 5, g2Codewords: 136, g2Data: 108},
	{size: 20, ecc: ecclevel.M, dataBits: 5352, numeric: 1600, alphanumeric: 970, bytesCap: 666, kanji: 410, g1Blocks: 3, g1Codewords: 67, g1Data: 41, g2Blocks: 13, g2Codewords: 68, g2Data: 42},
	{size: 20, ecc: ecclevel.Q, dataBits: 3880, numeric: 1159, alphanumeric: 702, bytesCap: 482, kanji: 297, g1Blocks: 15, g1Codewords: 54, g1Data: 24, g2Blocks: 5, g2Codewords: 55, g2Data: 25},
	{size: 20, ecc: ecclevel.H, dataBits: 3080, numeric: 919, alphanumeric: 557, bytesCap: 382, kanji: 235, g1Blocks: 15, g1Codewords: 43, g1Data: 15, g2Blocks: 10, g2Codewords: 44, g2Data: 16},
	{size: 21, ecc: ecclevel.L, dataBits: 7456, numeric: 2232, alphanumeric: 1352, bytesCap: 929, kanji: 572, g1Blocks: 4, g1Codewords: 144, g1Data: 116, g2Blocks: 4, g2Codewords: 145, g2Data: 117},
	{size: 21, ecc: ecclevel.M, dataBits: 5712, numeric: 1708, alphanumeric: 1035, bytesCap: 711, kanji: 438, g1Blocks: 17, g1Codewords: 68, g1Data: 42, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 21, ecc: ecclevel.Q, dataBits: 4096, numeric: 1224, alphanumeric: 742, bytesCap: 509, kanji: 314, g1Blocks: 17, g1Codewords: 50, g1Data: 22, g2Blocks: 6, g2Codewords: 51, g2Data: 23},
	{size: 21, ecc: ecclevel.H, dataBits: 3248, numeric: 969, alphanumeric: 587, bytesCap: 403, kanji: 248, g1Blocks: 19, g1Codewords: 46, g1Data: 16, g2Blocks: 6, g2Codewords: 47, g2Data: 17},
	{size: 22, ecc: ecclevel.L, dataBits: 8048, numeric: 2409, alphanumeric: 1460, bytesCap: 1003, kanji: 618, g1Blocks: 2, g1Codewords: 139, g1Data: 111, g2Blocks: 7, g2Codewords: 140, g2Data: 112},
	{size: 22, ecc: ecclevel.M, dataBits: 6256, numeric: 1872, alphanumeric: 1134, bytesCap: 779, kanji: 480, g1Blocks: 17, g1Codewords: 74, g1Data: 46, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 22, ecc: ecclevel.Q, dataBits: 4544, numeric: 1358, alphanumeric: 823, bytesCap: 565, kanji: 348, g1Blocks: 7, g1Codewords: 54, g1Data: 24, g2Blocks: 16, g2Codewords: 55, g2Data: 25},
	{size: 22, ecc: ecclevel.H, dataBits: 3536, numeric: 1056, alphanumeric: 640, bytesCap: 439, kanji: 270, g1Blocks: 34, g1Codewords: 37, g1Data: 13, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 23, ecc: ecclevel.L, dataBits: 8752, numeric: 2620, alphanumeric: 1588, bytesCap: 1091, kanji: 672, g1Blocks: 4, g1Codewords: 151, g1Data: 121, g2Blocks: 5, g2Codewords: 152, g2Data: 122},
	{size: 23, ecc: ecclevel.M, dataBits: 6880, numeric: 2059, alphanumeric: 1248, bytesCap: 857, kanji: 528, g1Blocks: 4, g1Codewords: 75, g1Data: 47, g2Blocks: 14, g2Codewords: 76, g2Data: 48},
	{size: 23, ecc: ecclevel.Q, dataBits: 4912, numeric: 1468, alphanumeric: 890, bytesCap: 611, kanji: 376, g1Blocks: 11, g1Codewords: 54, g1Data: 24, g2Blocks: 14, g2Codewords: 55, g2Data: 25},
	{size: 23, ecc: ecclevel.H, dataBits: 3712, numeric: 1108, alphanumeric: 672, bytesCap: 461, kanji: 284, g1Blocks: 16, g1Codewords: 45, g1Data: 15, g2Blocks: 14, g2Codewords: 46, g2Data: 16},
	{size: 24, ecc: ecclevel.L, dataBits: 9392, numeric: 2812, alphanumeric: 1704, bytesCap: 1171, kanji: 721, g1Blocks: 6, g1Codewords: 147, g1Data: 117, g2Blocks: 4, g2Codewords: 148, g2Data: 118},
	{size: 24, ecc: ecclevel.M, dataBits: 7312, numeric: 2188, alphanumeric: 1326, bytesCap: 911, kanji: 561, g1Blocks: 6, g1Codewords: 73, g1Data: 45, g2Blocks: 14, g2Codewords: 74, g2Data: 46},
	{size: 24, ecc: ecclevel.Q, dataBits: 5312, numeric: 1588, alphanumeric: 963, bytesCap: 661, kanji: 407, g1Blocks: 11, g1Codewords: 54, g1Data: 24, g2Blocks: 16, g2Codewords: 55, g2Data: 25},
	{size: 24, ecc: ecclevel.H, dataBits: 4112, numeric: 1228, alphanumeric: 744, bytesCap: 511, kanji: 315, g1Blocks: 30, g1Codewords: 46, g1Data: 16, g2Blocks: 2, g2Codewords: 47, g2Data: 17},
	{size: 25, ecc: ecclevel.L, dataBits: 10208, numeric: 3057, alphanumeric: 1853, bytesCap: 1273, kanji: 784, g1Blocks: 8, g1Codewords: 132, g1Data: 106, g2Blocks: 4, g2Codewords: 133, g2Data: 107},
	{size: 25, ecc: ecclevel.M, dataBits: 8000, numeric: 2395, alphanumeric: 1451, bytesCap: 997, kanji: 614, g1Blocks: 8, g1Codewords: 75, g1Data: 47, g2Blocks: 13, g2Codewords: 76, g2Data: 48},
	{size: 25, ecc: ecclevel.Q, dataBits: 5744, numeric: 1718, alphanumeric: 1041, bytesCap: 715, kanji: 440, g1Blocks: 7, g1Codewords: 54, g1Data: 24, g2Blocks: 22, g2Codewords: 55, g2Data: 25},
	{size: 25, ecc: ecclevel.H, dataBits: 4304, numeric: 1286, alphanumeric: 779, bytesCap: 535, kanji: 330, g1Blocks: 22, g1Codewords: 45, g1Data: 15, g2Blocks: 13, g2Codewords: 46, g2Data: 16},
	{size: 26, ecc: ecclevel.L, dataBits: 10960, numeric: 3283, alphanumeric: 1990, bytesCap: 1367, kanji: 842, g1Blocks: 10, g1Codewords: 142, g1Data: 114, g2Blocks: 2, g2Codewords: 143, g2Data: 115},
	{size: 26, ecc: ecclevel.M, dataBits: 8496, numeric: 2544, alphanumeric: 1542, bytesCap: 1059, kanji: 652, g1Blocks: 19, g1Codewords: 74, g1Data: 46, g2Blocks: 4, g2Codewords: 75, g2Data: 47},
	{size: 26, ecc: ecclevel.Q, dataBits: 6032, numeric: 1804, alphanumeric: 1094, bytesCap: 751, kanji: 462, g1Blocks: 28, g1Codewords: 50, g1Data: 22, g2Blocks: 6, g2Codewords: 51, g2Data: 23},
	{size: 26, ecc: ecclevel.H, dataBits: 4768, numeric: 1425, alphanumeric: 864, bytesCap: 593, kanji: 365, g1Blocks: 33, g1Codewords: 46, g1Data: 16, g2Blocks: 4, g2Codewords: 47, g2Data: 17},
	{size: 27, ecc: ecclevel.L, dataBits: 11744, numeric: 3517, alphanumeric: 2132, bytesCap: 1465, kanji: 902, g1Blocks: 8, g1Codewords: 152, g1Data: 122, g2Blocks: 4, g2Codewords: 153, g2Data: 123},
	{size: 27, ecc: ecclevel.M, dataBits: 9024, numeric: 2701, alphanumeric: 1637, bytesCap: 1125, kanji: 692, g1Blocks: 22, g1Codewords: 73, g1Data: 45, g2Blocks: 3, g2Codewords: 74, g2Data: 46},
	{size: 27, ecc: ecclevel.Q, dataBits: 6464, numeric: 1933, alphanumeric: 1172, bytesCap: 805, kanji: 496, g1Blocks: 8, g1Codewords: 53, g1Data: 23, g2Blocks: 26, g2Codewords: 54, g2Data: 24},
	{size: 27, ecc: ecclevel.H, dataBits: 5024, numeric: 1501, alphanumeric: 910, bytesCap: 625, kanji: 385, g1Blocks: 12, g1Codewords: 45, g1Data: 15, g2Blocks: 28, g2Codewords: 46, g2Data: 16},
	{size: 28, ecc: ecclevel.L, dataBits: 12248, numeric: 3669, alphanumeric: 2223, bytesCap: 1528, kanji: 940, g1Blocks: 3, g1Codewords: 147, g1Data: 117, g2Blocks: 10, g2Codewords: 148, g2Data: 118},
	{size: 28, ecc: ecclevel.M, dataBits: 9544, numeric: 2857, alphanumeric: 1732, bytesCap: 1190, kanji: 732, g1Blocks: 3, g1Codewords: 73, g1Data: 45, g2Blocks: 23, g2Codewords: 74, g2Data: 46},
	{size: 28, ecc: ecclevel.Q, dataBits: 6968, numeric: 2085, alphanumeric: 1263, bytesCap: 868, kanji: 534, g1Blocks: 4, g1Codewords: 54, g1Data: 24, g2Blocks: 31, g2Codewords: 55, g2Data: 25},
	{size: 28, ecc: ecclevel.H, dataBits: 5288, numeric: 1581, alphanumeric: 958, bytesCap: 658, kanji: 405, g1Blocks: 11, g1Codewords: 45, g1Data: 15, g2Blocks: 31, g2Codewords: 46, g2Data: 16},
	{size: 29, ecc: ecclevel.L, dataBits: 13048, numeric: 3909, alphanumeric: 2369, bytesCap: 1628, kanji: 1002, g1Blocks: 7, g1Codewords: 146, g1Data: 116, g2Blocks: 7, g2Codewords: 147, g2Data: 117},
	{size: 29, ecc: ecclevel.M, dataBits: 10136, numeric: 3035, alphanumeric: 1839, bytesCap: 1264, kanji: 778, g1Blocks: 21, g1Codewords: 73, g1Data: 45, g2Blocks: 7, g2Codewords: 74, g2Data: 46},
	{size: 29, ecc: ecclevel.Q, dataBits: 7288, numeric: 2181, alphanumeric: 1322, bytesCap: 908, kanji: 559, g1Blocks: 1, g1Codewords: 53, g1Data: 23, g2Blocks: 37, g2Codewords: 54, g2Data: 24},
	{size: 29, ecc: ecclevel.H, dataBits: 5608, numeric: 1677, alphanumeric: 1016, bytesCap: 698, kanji: 430, g1Blocks: 19, g1Codewords: 45, g1Data: 15, g2Blocks: 26, g2Codewords: 46, g2Data: 16},
	{size: 30, ecc: ecclevel.L, dataBits: 13880, numeric: 4158, alphanumeric: 2520, bytesCap: 1732, kanji: 1066, g1Blocks: 5, g1Codewords: 145, g1Data: 115, g2Blocks: 10, g2Codewords: 146, g2Data: 116},
	{size: 30, ecc: ecclevel.M, dataBits: 10984, numeric: 3289, alphanumeric: 1994, bytesCap: 1370, kanji: 843, g1Blocks: 19, g1Codewords: 75, g1Data: 47, g2Blocks: 10, g2Codewords: 76, g2Data: 48},
	{size: 30, ecc: ecclevel.Q, dataBits: 7880, numeric: 2358, alphanumeric: 1429, bytesCap: 982, kanji: 604, g1Blocks: 15, g1Codewords: 54, g1Data: 24, g2Blocks: 25, g2Codewords: 55, g2Data: 25},
	{size: 30, ecc: ecclevel.H, dataBits: 5960, numeric: 1782, alphanumeric: 1080, bytesCap: 742, kanji: 457, g1Blocks: 23, g1Codewords: 45, g1Data: 15, g2Blocks: 25, g2Codewords: 46, g2Data: 16},
	{size: 31, ecc: ecclevel.L, dataBits: 14744, numeric: 4417, alphanumeric: 2677, bytesCap: 1840, kanji: 1132, g1Blocks: 13, g1Codewords: 145, g1Data: 115, g2Blocks: 3, g2Codewords: 146, g2Data: 116},
	{size: 31, ecc: ecclevel.M, dataBits: 11640, numeric: 3486, alphanumeric: 2113, bytesCap: 1452, kanji: 894, g1Blocks: 2, g1Codewords: 74, g1Data: 46, g2Blocks: 29, g2Codewords: 75, g2Data: 47},
	{size: 31, ecc: ecclevel.Q, dataBits: 8264, numeric: 2473, alphanumeric: 1499, bytesCap: 1030, kanji: 634, g1Blocks: 42, g1Codewords: 54, g1Data: 24, g2Blocks: 1, g2Codewords: 55, g2Data: 25},
	{size: 31, ecc: ecclevel.H, dataBits: 6344, numeric: 1897, alphanumeric: 1150, bytesCap: 790, kanji: 486, g1Blocks: 23, g1Codewords: 45, g1Data: 15, g2Blocks: 28, g2Codewords: 46, g2Data: 16},
	{size: 32, ecc: ecclevel.L, dataBits: 15640, numeric: 4686, alphanumeric: 2840, bytesCap: 1952, kanji: 1201, g1Blocks: 17, g1Codewords: 145, g1Data: 115, g2Blocks: 0, g2Codewords: 0, g2Data: 0},
	{size: 32, ecc: ecclevel.M, dataBits: 12328, numeric: 3693, alphanumeric: 2238, bytesCap: 1538, kanji: 947, g1Blocks: 10, g1Codewords: 74, g1Data: 46, g2Blocks: 23, g2Codewords: 75, g2Data: 47},
	{size: 32, ecc: ecclevel.Q, dataBits: 8920, numeric: 2670, alphanumeric: 1618, bytesCap: 1112, kanji: 684, g1Blocks: 10, g1Codewords: 54, g1Data: 24, g2Blocks: 35, g2Codewords: 55, g2Data: 25},
	{size: 32, ecc: ecclevel.H, dataBits: 6760, numeric: 2022, alphanumeric: 1226, bytesCap: 842, kanji: 518, g1Blocks: 19, g1Codewords: 45, g1Data: 15, g2Blocks: 35, g2Codewords: 46, g2Data: 16},
	{size: 33, ecc: ecclevel.L, dataBits: 16568, numeric: 4965, alphanumeric: 3009, bytesCap: 2068, kanji: 1273, g1Blocks: 17, g1Codewords: 145, g1Data: 115, g2Blocks: 1, g2Codewords: 146, g2Data: 116},
	{size: 33, ecc: ecclevel.M, dataBits: 13048, numeric: 3909, alphanumeric: 2369, bytesCap: 1628, kanji: 1002, g1Blocks: 14, g1Codewords: 74, g1Data: 46, g2Blocks: 21, g2Codewords: 75, g2Data: 47},
	{size: 33, ecc: ecclevel.Q, dataBits: 9368, numeric: 2805, alphanumeric: 1700, bytesCap: 1168, kanji: 719, g1Blocks: 29, g1Codewords: 54, g1Data: 24, g2Blocks: 19, g2Codewords: 55, g2Data: 25},
	{size: 33, ecc: ecclevel.H, dataBits: 7208, numeric: 2157, alphanumeric: 1307, bytesCap: 898, kanji: 553, g1Blocks: 11, g1Codewords: 45, g1Data: 15, g2Blocks: 46, g2Codewords: 46, g2Data: 16},
	{size: 34, ecc: ecclevel.L, dataBits: 17528, numeric: 5253, alphanumeric: 3183, bytesCap: 2188, kanji: 1347, g1Blocks: 13, g1Codewords: 145, g1Data: 115, g2Blocks: 6, g2Codewords: 146, g2Data: 116},
	{size: 34, ecc: ecclevel.M, dataBits: 13800, numeric: 4134, alphanumeric: 2506, bytesCap: 1722, kanji: 1060, g1Blocks: 14, g1Codewords: 74, g1Data: 46, g2Blocks: 23, g2Codewords: 75, g2Data: 47},
	{size: 34, ecc: ecclevel.Q, dataBits: 9848, numeric: 2949, alphanumeric: 1787, bytesCap: 1228, kanji: 756, g1Blocks: 44, g1Codewords: 54, g1Data: 24, g2Blocks: 7, g2Codewords: 55, g2Data: 25},
	{size: 34, ecc: ecclevel.H, dataBits: 7688, numeric: 2301, alphanumeric: 1394, bytesCap: 958, kanji: 590, g1Blocks: 59, g1Codewords: 46, g1Data: 16, g2Blocks: 1, g2Codewords: 47, g2Data: 17},
	{size: 35, ecc: ecclevel.L, dataBits: 18448, numeric: 5529, alphanumeric: 3351, bytesCap: 2303, kanji: 1417, g1Blocks: 12, g1Codewords: 151, g1Data: 121, g2Blocks: 7, g2Codewords: 152, g2Data: 122},
	{size: 35, ecc: ecclevel.M, dataBits: 14496, numeric: 4343, alphanumeric: 2632, bytesCap: 1809, kanji: 1113, g1Blocks: 12, g1Codewords: 75, g1Data: 47, g2Blocks: 26, g2Codewords: 76, g2Data: 48},
	{size: 35, ecc: ecclevel.Q, dataBits: 10288, numeric: 3081, alphanumeric: 1867, bytesCap: 1283, kanji: 790, g1Blocks: 39, g1Codewords: 54, g1Data: 24, g2Blocks: 14, g2Codewords: 55, g2Data: 25},
	{size: 35, ecc: ecclevel.H, dataBits: 7888, numeric: 2361, alphanumeric: 1431, bytesCap: 983, kanji: 605, g1Blocks: 22, g1Codewords: 45, g1Data: 15, g2Blocks: 41, g2Codewords: 46, g2Data: 16},
	{size: 36, ecc: ecclevel.L, dataBits: 19472, numeric: 5836, alphanumeric: 3537, bytesCap: 2431, kanji: 1496, g1Blocks: 6, g1Codewords: 151, g1Data: 121, g2Blocks: 14, g2Codewords: 152, g2Data: 122},
	{size: 36, ecc: ecclevel.M, dataBits: 15312, numeric: 4588, alphanumeric: 2780, bytesCap: 1911, kanji: 1176, g1Blocks: 6, g1Codewords: 75, g1Data: 47, g2Blocks: 34, g2Codewords: 76, g2Data: 48},
	{size: 36, ecc: ecclevel.Q, dataBits: 10832, numeric: 3244, alphanumeric: 1966, bytesCap: 1351, kanji: 832, g1Blocks: 46, g1Codewords: 54, g1Data: 24, g2Blocks: 10, g2Codewords: 55, g2Data: 25},
	{size: 36, ecc: ecclevel.H, dataBits: 8432, numeric: 2524, alphanumeric: 1530, bytesCap: 1051, kanji: 647, g1Blocks: 2, g1Codewords: 45, g1Data: 15, g2Blocks: 64, g2Codewords: 46, g2Data: 16},
	{size: 37, ecc: ecclevel.L, dataBits: 20528, numeric: 6153, alphanumeric: 3729, bytesCap: 2563, kanji: 1577, g1Blocks: 17, g1Codewords: 152, g1Data: 122, g2Blocks: 4, g2Codewords: 153, g2Data: 123},
	{size: 37, ecc: ecclevel.M, dataBits: 15936, numeric: 4775, alphanumeric: 2894, bytesCap: 1989, kanji: 1224, g1Blocks: 29, g1Codewords: 74, g1Data: 46, g2Blocks: 14, g2Codewords: 75, g2Data: 47},
	{size: 37, ecc: ecclevel.Q, dataBits: 11408, numeric: 3417, alphanumeric: 2071, bytesCap: 1423, kanji: 876, g1Blocks: 49, g1Codewords: 54, g1Data: 24, g2Blocks: 10, g2Codewords: 55, g2Data: 25},
	{size: 37, ecc: ecclevel.H, dataBits: 8768, numeric: 2625, alphanumeric: 1591, bytesCap: 1093, kanji: 673, g1Blocks: 24, g1Codewords: 45, g1Data: 15, g2Blocks: 46, g2Codewords: 46, g2Data: 16},
	{size: 38, ecc: ecclevel.L, dataBits: 21616, numeric: 6479, alphanumeric: 3927, bytesCap: 2699, kanji: 1661, g1Blocks: 4, g1Codewords: 152, g1Data: 122, g2Blocks: 18, g2Codewords: 153, g2Data: 123},
	{size: 38, ecc: ecclevel.M, dataBits: 16816, numeric: 5039, alphanumeric: 3054, bytesCap: 2099, kanji: 1292, g1Blocks: 13, g1Codewords: 74, g1Data: 46, g2Blocks: 32, g2Codewords: 75, g2Data: 47},
	{size: 38, ecc: ecclevel.Q, dataBits: 12016, numeric: 3599, alphanumeric: 2181, bytesCap: 1499, kanji: 923, g1Blocks: 48, g1Codewords: 54, g1Data: 24, g2Blocks: 14, g2Codewords: 55, g2Data: 25},
	{size: 38, ecc: ecclevel.H, dataBits: 9136, numeric: 2735, alphanumeric: 1658, bytesCap: 1139, kanji: 701, g1Blocks: 42, g1Codewords: 45, g1Data: 15, g2Blocks: 32, g2Codewords: 46, g2Data: 16},
	{size: 39, ecc: ecclevel.L, dataBits: 22496, numeric: 6743, alphanumeric: 4087, bytesCap: 2809, kanji: 1729, g1Blocks: 20, g1Codewords: 147, g1Data: 117, g2Blocks: 4, g2Codewords: 148, g2Data: 118},
	{size: 39, ecc: ecclevel.M, dataBits: 17728, numeric: 5313, alphanumeric: 3220, bytesCap: 2213, kanji: 1362, g1Blocks: 40, g1Codewords: 75, g1Data: 47, g2Blocks: 7, g2Codewords: 76, g2Data: 48},
	{size: 39, ecc: ecclevel.Q, dataBits: 12656, numeric: 3791, alphanumeric: 2298, bytesCap: 1579, kanji: 972, g1Blocks: 43, g1Codewords: 54, g1Data: 24, g2Blocks: 22, g2Codewords: 55, g2Data: 25},
	{size: 39, ecc: ecclevel.H, dataBits: 9776, numeric: 2927, alphanumeric: 1774, bytesCap: 1219, kanji: 750, g1Blocks: 10, g1Codewords: 45, g1Data: 15, g2Blocks: 67, g2Codewords: 46, g2Data: 16},
	{size: 40, ecc: ecclevel.L, dataBits: 23648, numeric: 7089, alphanumeric: 4296, bytesCap: 2953, kanji: 1817, g1Blocks: 19, g1Codewords: 148, g1Data: 118, g2Blocks: 6, g2Codewords: 149, g2Data: 119},
	{size: 40, ecc: ecclevel.M, dataBits: 18672, numeric: 5596, alphanumeric: 3391, bytesCap: 2331, kanji: 1435, g1Blocks: 18, g1Codewords: 75, g1Data: 47, g2Blocks: 31, g2Codewords: 76, g2Data: 48},
	{size: 40, ecc: ecclevel.Q, dataBits: 13328, numeric: 3993, alphanumeric: 2420, bytesCap: 1663, kanji: 1024, g1Blocks: 34, g1Codewords: 54, g1Data: 24, g2Blocks: 34, g2Codewords: 55, g2Data: 25},
	{size: 40, ecc: ecclevel.H, dataBits: 10208, numeric: 3057, alphanumeric: 1852, bytesCap: 1273, kanji: 784, g1Blocks: 20, g1Codewords: 45, g1Data: 15, g2Blocks: 61, g2Codewords: 46, g2Data: 16},
}
