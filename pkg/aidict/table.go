package aidict

import (
	"strconv"
	"strings"
)

// rawTable mirrors the GS1 Barcode Syntax Dictionary in the same
// column layout the reference parser expects: AI, an optional '*'
// fixed-length flag, the component specification(s), attributes
// (req=/ex=), and a trailing "# TITLE" comment. A trailing 'n' on the
// AI expands into the ten AIs sharing that prefix with an implied
// decimal point at digit n (used by the weight/measure/price families).
const rawTable = `
00         *   N18,csum,gcppos2                  dlpkey                                             # SSCC
01         *   N14,csum,gcppos2                  ex=255,37 dlpkey=22,10,21|235                      # GTIN
02         *   N14,csum,gcppos2                  ex=01,03 req=37                                    # CONTENT
10             X..20                             req=01,02,03,8006,8026                             # BATCH/LOT
11         *   N6,yymmd0                         req=01,02,03,8006,8026                             # PROD DATE
12         *   N6,yymmd0                         req=8020                                           # DUE DATE
13         *   N6,yymmd0                         req=01,02,03,8006,8026                             # PACK DATE
15         *   N6,yymmd0                         req=01,02,03,8006,8026                             # BEST BEFORE or BEST BY
16         *   N6,yymmd0                         req=01,02,03,8006,8026                             # SELL BY
17         *   N6,yymmd0                         req=01,02,03,8006,8026                             # USE BY or EXPIRY
20         *   N2                                req=01,02                                          # VARIANT
21             X..20                             req=01,8006                                        # SERIAL
22             X..20                             req=01                                              # CPV
235            X..28                             req=01 ex=21                                       # TPX
240            X..30                             req=01,02                                          # ADDITIONAL ID
241            X..30                             req=01,02                                          # CUST. PART No.
242            N..6                              req=01                                              # MTO VARIANT
243            X..20                             req=01                                              # PCN
250            X..30                             req=01                                              # SECONDARY SERIAL
251            X..30                             req=01                                              # REF. TO SOURCE
253            N13,csum,key X..17                dlpkey                                             # GDTI
254            X..20                             req=414,417                                        # GLN EXTENSION COMPONENT
255            N13,csum,key N..12                ex=01,02 dlpkey                                    # GCN
30             N..8                              req=01,02                                          # VAR. COUNT
310n       *   N6                                req=01,02 ex=320n                                  # NET WEIGHT (kg)
311n       *   N6                                req=01,02 ex=321n                                  # LENGTH (m)
312n       *   N6                                req=01,02 ex=322n                                  # WIDTH (m)
313n       *   N6                                req=01,02 ex=323n                                  # HEIGHT (m)
314n       *   N6                                req=01,02 ex=324n                                  # AREA (m2)
315n       *   N6                                req=01,02 ex=316n                                  # NET VOLUME (l)
316n       *   N6                                req=01,02 ex=315n                                  # NET VOLUME (m3)
320n       *   N6                                req=01,02 ex=310n                                  # NET WEIGHT (lb)
321n       *   N6                                req=01,02 ex=311n                                  # LENGTH (in)
322n       *   N6                                req=01,02 ex=312n                                  # LENGTH (ft)
323n       *   N6                                req=01,02 ex=313n                                  # LENGTH (yd)
324n       *   N6                                req=01,02 ex=314n                                  # WIDTH (in)
325n       *   N6                                req=01,02                                          # WIDTH (ft)
326n       *   N6                                req=01,02                                          # WIDTH (yd)
327n       *   N6                                req=01,02                                          # HEIGHT (in)
328n       *   N6                                req=01,02                                          # HEIGHT (ft)
329n       *   N6                                req=01,02                                          # HEIGHT (yd)
330n       *   N6                                req=00                                              # GROSS WEIGHT (kg)
331n       *   N6                                req=00                                              # LENGTH (m), log
332n       *   N6                                req=00                                              # WIDTH (m), log
333n       *   N6                                req=00                                              # HEIGHT (m), log
334n       *   N6                                req=00                                              # AREA (m2), log
335n       *   N6                                req=00                                              # VOLUME (l), log
336n       *   N6                                req=00                                              # VOLUME (m3), log
337n       *   N6                                req=00                                              # KG PER m2
340n       *   N6                                req=00                                              # GROSS WEIGHT (lb)
341n       *   N6                                req=00                                              # LENGTH (in), log
342n       *   N6                                req=00                                              # LENGTH (ft), log
343n       *   N6                                req=00                                              # LENGTH (yd), log
344n       *   N6                                req=00                                              # WIDTH (in), log
345n       *   N6                                req=00                                              # WIDTH (ft), log
346n       *   N6                                req=00                                              # WIDTH (yd), log
347n       *   N6                                req=00                                              # HEIGHT (in), log
348n       *   N6                                req=00                                              # HEIGHT (ft), log
349n       *   N6                                req=00                                              # HEIGHT (yd), log
350n       *   N6                                req=00                                              # AREA (in2)
351n       *   N6                                req=00                                              # AREA (ft2)
352n       *   N6                                req=00                                              # AREA (yd2)
353n       *   N6                                req=00                                              # AREA (in2), log
354n       *   N6                                req=00                                              # AREA (ft2), log
355n       *   N6                                req=00                                              # AREA (yd2), log
356n       *   N6                                req=01,02                                          # NET WEIGHT (t oz)
357n       *   N6                                req=01,02                                          # NET VOLUME (oz)
360n       *   N6                                req=00                                              # NET VOLUME (q)
361n       *   N6                                req=00                                              # NET VOLUME (gal)
362n       *   N6                                req=00                                              # VOLUME (q), log
363n       *   N6                                req=00                                              # VOLUME (gal), log
364n       *   N6                                req=00                                              # VOLUME (in3)
365n       *   N6                                req=00                                              # VOLUME (ft3)
366n       *   N6                                req=00                                              # VOLUME (yd3)
367n       *   N6                                req=00                                              # VOLUME (in3), log
368n       *   N6                                req=00                                              # VOLUME (ft3), log
369n       *   N6                                req=00                                              # VOLUME (yd3), log
37             N..8                              req=02                                              # COUNT
390n           N..15                             req=8020 ex=391n,394n,8111                         # AMOUNT
391n           N3,iso4217 N..15                  req=8020 ex=390n,394n,8111                         # AMOUNT
392n           N..15                             req=01,02                                          # PRICE
393n           N3,iso4217 N..15                  req=01,02                                          # PRICE
394n           N4 N..15                          req=8020 ex=390n,391n,8111                         # PRCNT OFF
395n           N6                                req=01,02                                          # PRICE/UoM
400            X..30                                                                                # ORDER NUMBER
401            X..30,csumalpha,key               dlpkey                                              # GINC
402            N17,csum,key                      dlpkey                                              # GSIN
403            X..30                             req=00                                              # ROUTE
410        *   N13,csum,key                                                                         # SHIP TO LOC
411        *   N13,csum,key                                                                         # BILL TO
412        *   N13,csum,key                                                                         # PURCHASE FROM
413        *   N13,csum,key                                                                         # SHIP FOR LOC
414        *   N13,csum,key                      dlpkey=254                                         # LOC No.
415        *   N13,csum,key                      dlpkey                                              # PAY TO
416        *   N13,csum,key                                                                         # PROD/SERV LOC
417        *   N13,csum,key                      dlpkey=7040                                        # PARTY
420            X..20                                                                                # SHIP TO POST
421            N3,iso3166 X..9                                                                      # SHIP TO POST
422        *   N3,iso3166                        req=01,02                                          # ORIGIN
423            N..15,iso3166list                 req=01,02                                          # COUNTRY - INITIAL PROCESS
424        *   N3,iso3166                        req=01,02                                          # COUNTRY - PROCESS
425            N..15,iso3166list                 req=01,02                                          # COUNTRY - DISASSEMBLY
426        *   N3,iso3166                        req=01,02                                          # COUNTRY - FULL PROCESS
427            X..3                              req=01,02                                          # ORIGIN SUBDIVISION
4300           X..35,pcenc                                                                          # SHIP TO COMP
4301           X..35,pcenc                                                                          # SHIP TO NAME
4302           X..70,pcenc                                                                          # SHIP TO ADD1
4303           X..70,pcenc                                                                          # SHIP TO ADD2
4304           X..70,pcenc                                                                          # SHIP TO SUB
4305           X..70,pcenc                                                                          # SHIP TO LOC
4306           X..70,pcenc                                                                          # SHIP TO REG
4307           X2,iso3166alpha2                                                                     # SHIP TO COUNTRY
4308           X..30                                                                                # SHIP TO PHONE
4309           N20,latlong                                                                          # SHIP TO GEO
4310           X..35,pcenc                                                                          # RTN TO COMP
4311           X..35,pcenc                                                                          # RTN TO NAME
4312           X..70,pcenc                                                                          # RTN TO ADD1
4313           X..70,pcenc                                                                          # RTN TO ADD2
4314           X..70,pcenc                                                                          # RTN TO SUB
4315           X..70,pcenc                                                                          # RTN TO LOC
4316           X..70,pcenc                                                                          # RTN TO REG
4317           X2,iso3166alpha2                                                                     # RTN TO COUNTRY
4318           X..30                                                                                # RTN TO POST
4319           X..30                                                                                # RTN TO PHONE
4320           X..35,pcenc                                                                          # SRV DESCRIPTION
4321           N1,yesno                                                                              # DANGEROUS GOODS
4322           N1,yesno                                                                              # AUTH LEAVE
4323           N1,yesno                                                                              # SIG REQUIRED
4324           N10,yymmddhh                                                                          # NBEF DEL DT
4325           N10,yymmddhh                                                                          # NAFT DEL DT
4326           N6,yymmdd                                                                             # REL DATE
4330           X..35,pcenc                       req=01,02                                          # MAX TEMP (F)
4331           X..35,pcenc                       req=01,02                                          # MAX TEMP (C)
4332           X..35,pcenc                       req=01,02                                          # MIN TEMP (F)
4333           X..35,pcenc                       req=01,02                                          # MIN TEMP (C)
7001       *   N13                               req=01,02                                          # NSN
7002           X..30                             req=01,02                                          # MEAT CUT
7003       *   N10,yymmddhh                      req=01,02                                          # EXPIRY TIME
7004           N..4                              req=01,02                                          # ACTIVE POTENCY
7005           X..12                             req=01,02                                          # CATCH AREA
7006       *   N6,yymmdd                         req=01,02                                          # FIRST FREEZE DATE
7007           N6,yymmdd N..6,yymmdd             req=01,02                                          # HARVEST DATE
7008           X..3                              req=01,02                                          # AQUATIC SPECIES
7009           X..10                             req=01,02                                          # FISHING GEAR TYPE
7010           X..2                              req=01,02                                          # PROD METHOD
7011           N6,yymmdd N..4,hhmm               req=01,02                                          # TEST BY DATE
7020           X..20                             req=01,414                                         # REFURB LOT
7021           X..20                             req=01                                              # FUNC STAT
7022           X..20                             req=01                                              # REV STAT
7023           X..30                             req=00,01                                          # GIAI - ASSEMBLY
7030           N3,iso3166999 X..27               req=01                                              # PROCESSOR # 0
7031           N3,iso3166999 X..27               req=01                                              # PROCESSOR # 1
7032           N3,iso3166999 X..27               req=01                                              # PROCESSOR # 2
7033           N3,iso3166999 X..27               req=01                                              # PROCESSOR # 3
7034           N3,iso3166999 X..27               req=01                                              # PROCESSOR # 4
7035           N3,iso3166999 X..27               req=01                                              # PROCESSOR # 5
7036           N3,iso3166999 X..27               req=01                                              # PROCESSOR # 6
7037           N3,iso3166999 X..27               req=01                                              # PROCESSOR # 7
7038           N3,iso3166999 X..27               req=01                                              # PROCESSOR # 8
7039           N3,iso3166999 X..27               req=01                                              # PROCESSOR # 9
7040           N1 X1 X1 X1,importeridx           req=417                                             # UIC+EXT
710            X..20                             req=01                                              # NHRN PZN
711            X..20                             req=01                                              # NHRN CIP
712            X..20                             req=01                                              # NHRN CN
713            X..20                             req=01                                              # NHRN DRN
714            X..20                             req=01                                              # NHRN AIM
715            X..20                             req=01                                              # NHRN NDC
716            X..20                             req=01                                              # NHRN AIC
717            X..20                             req=01                                              # NHRN SRN
7230           X2 X..28                          req=01,8004                                        # CERT # 1
7231           X2 X..28                          req=01,8004                                        # CERT # 2
7232           X2 X..28                          req=01,8004                                        # CERT # 3
7233           X2 X..28                          req=01,8004                                        # CERT # 4
7234           X2 X..28                          req=01,8004                                        # CERT # 5
7235           X2 X..28                          req=01,8004                                        # CERT # 6
7236           X2 X..28                          req=01,8004                                        # CERT # 7
7237           X2 X..28                          req=01,8004                                        # CERT # 8
7238           X2 X..28                          req=01,8004                                        # CERT # 9
7239           X2 X..28                          req=01,8004                                        # CERT # 10
7240           X..20                             req=01                                              # PROTOCOL
7241           N2,mediatype                      req=8017,8018                                      # AIDC MEDIA TYPE
7242           X..25                             req=8017,8018                                      # VCN
8001       *   N14                               req=01                                              # DIMENSIONS
8002           X..20                             req=01                                              # CMT No.
8003           N1 N13,csum,key X..16              dlpkey                                              # GRAI
8004           X..30,key                         dlpkey=7040                                        # GIAI
8005       *   N6                                req=01,02                                          # PRICE PER UNIT
8006       *   N14,csum,gcppos2 N2 N2             dlpkey=22,10,21                                    # ITIP
8007           X..34,iban                                                                           # IBAN
8008           N8,yymmddhh N..4,mmoptss          req=01,02                                          # PROD TIME
8009           X..50                             req=01                                              # OPTSEN
8010           Y..30,key                         dlpkey=8011                                        # CPID
8011           N..12,nozeroprefix                req=8010                                           # CPID SERIAL
8012           X..20                             req=01                                              # VERSION
8013           X..25,csumalpha,key               dlpkey                                              # GMN
8017       *   N18,csum,key                      ex=8018 dlpkey=8019                                # GSRN - PROVIDER
8018       *   N18,csum,key                      ex=8017 dlpkey=8019                                # GSRN - RECIPIENT
8019           N..10                             req=8017,8018                                      # SRIN
8020           X..25                             req=415                                            # REF No.
8026       *   N14,csum,gcppos2 N2 N2             dlpkey=22,10,21                                    # ITIP CONTENT
8030           X..90                                                                                # DIGSIG
8110           X..70,couponcode                                                                     # COUPON CODE
8111       *   N4                                req=255 ex=390n,391n,394n                          # POINTS
8112           X..70,couponposoffer                                                                 # COUPON OFFER
8200           X..70                             req=01                                              # PRODUCT URL
90             X..30                                                                                # INTERNAL
91             X..90                                                                                # INTERNAL
92             X..90                                                                                # INTERNAL
93             X..90                                                                                # INTERNAL
94             X..90                                                                                # INTERNAL
95             X..90                                                                                # INTERNAL
96             X..90                                                                                # INTERNAL
97             X..90                                                                                # INTERNAL
98             X..90                                                                                # INTERNAL
99             X..90                                                                                # INTERNAL
`

// corePriority is every AI this catalogue treats as a "core" anchor for
// beam-search scoring: GTIN, the date family, batch/lot and serial.
var corePriority = map[string]bool{
	"00": true, "01": true, "02": true,
	"10": true, "11": true, "12": true, "13": true, "15": true, "16": true, "17": true,
	"20": true, "21": true, "22": true,
}

func isInternalAI(ai string) bool {
	switch ai {
	case "90", "91", "92", "93", "94", "95", "96", "97", "98", "99":
		return true
	}
	return false
}

// parseComponentSpec parses one GS1 syntax-dictionary component such as
// "N14", "X..20", "N6,yymmd0", or "N13,csum,key" into its data type,
// length bounds and linter names.
func parseComponentSpec(spec string) (dataType string, minLen, maxLen int, linters []string) {
	parts := strings.Split(spec, ",")
	typeLen := parts[0]
	linters = parts[1:]

	dataType = typeLen[0:1]
	lenSpec := typeLen[1:]

	switch {
	case strings.Contains(lenSpec, ".."):
		maxLen, _ = strconv.Atoi(strings.ReplaceAll(lenSpec, "..", ""))
		minLen = 1
	case lenSpec != "":
		n, _ := strconv.Atoi(lenSpec)
		minLen, maxLen = n, n
	}
	return dataType, minLen, maxLen, linters
}

func buildSpec(ai, title, spec string, fixedLengthFlag bool, required, exclusive []string, decimalPos int, hasDecimalPos bool) *Spec {
	var components []Component
	totalMin, totalMax := 0, 0
	dataType := "X"
	dateFormat := DateNone
	checkDigit := false

	for _, part := range strings.Fields(spec) {
		dtype, minLen, maxLen, linters := parseComponentSpec(part)
		components = append(components, Component{DataType: dtype, MinLen: minLen, MaxLen: maxLen})
		totalMin += minLen
		totalMax += maxLen
		dataType = dtype
		for _, l := range linters {
			switch l {
			case "yymmdd":
				dateFormat = DateYYMMDD
			case "yymmd0":
				dateFormat = DateYYMMD0
			case "yyyymmdd":
				dateFormat = DateYYYYMMDD
			case "yymmddhh":
				dateFormat = DateYYMMDDHH
			case "csum", "csumalpha":
				checkDigit = true
			}
		}
	}

	fixedLength := false
	if fixedLengthFlag {
		fixedLength = true
	}

	priority := PriorityOther
	switch {
	case corePriority[ai]:
		priority = PriorityCore
	case isInternalAI(ai):
		priority = PriorityInternal
	}

	return &Spec{
		AI:            ai,
		Title:         title,
		DataType:      dataType,
		MinLength:     totalMin,
		MaxLength:     totalMax,
		FixedLength:   fixedLength,
		CheckDigit:    checkDigit,
		DecimalPos:    decimalPos,
		HasDecimalPos: hasDecimalPos,
		DateFormat:    dateFormat,
		RequiredAIs:   required,
		ExclusiveAIs:  exclusive,
		Components:    components,
		Priority:      priority,
	}
}

func splitAIList(raw string) []string {
	if raw == "" {
		return nil
	}
	// required/exclusive AI lists may use '|' to mean "one of"; we keep
	// them flat since the core decoder treats req=/ex= as informational.
	raw = strings.ReplaceAll(raw, "|", ",")
	return strings.Split(raw, ",")
}

// parseRawTable parses rawTable into a flat map keyed by concrete AI
// code, expanding the 'n'-suffixed families into their ten members.
func parseRawTable() map[string]*Spec {
	entries := make(map[string]*Spec, 300)

	for _, line := range strings.Split(strings.TrimSpace(rawTable), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		hashParts := strings.SplitN(line, "#", 2)
		if len(hashParts) < 2 {
			continue
		}
		title := strings.TrimSpace(hashParts[1])
		mainPart := strings.TrimSpace(hashParts[0])

		tokens := strings.Fields(mainPart)
		if len(tokens) == 0 {
			continue
		}
		aiSpec := tokens[0]

		fixedLengthFlag := false
		specStart := 1
		if len(tokens) > 1 && (tokens[1] == "*" || tokens[1] == "*?") {
			fixedLengthFlag = true
			specStart = 2
		} else if len(tokens) > 1 && tokens[1] == "?" {
			specStart = 2
		}

		spec := ""
		if specStart < len(tokens) {
			spec = tokens[specStart]
		}
		attributes := ""
		if specStart+1 < len(tokens) {
			attributes = strings.Join(tokens[specStart+1:], " ")
		}

		var required, exclusive []string
		for _, attr := range strings.Fields(attributes) {
			switch {
			case strings.HasPrefix(attr, "req="):
				required = splitAIList(attr[4:])
			case strings.HasPrefix(attr, "ex="):
				exclusive = splitAIList(attr[3:])
			}
		}

		switch {
		case strings.HasSuffix(aiSpec, "n"):
			base := strings.TrimSuffix(aiSpec, "n")
			for n := 0; n < 10; n++ {
				ai := base + strconv.Itoa(n)
				entries[ai] = buildSpec(ai, title, spec, fixedLengthFlag, required, exclusive, n, true)
			}
		default:
			entries[aiSpec] = buildSpec(aiSpec, title, spec, fixedLengthFlag, required, exclusive, 0, false)
		}
	}

	return entries
}
