package storage

// DefaultTongueTwisters returns the built-in pronunciation drill catalog
// seeded into a fresh document. Ids are stable (tt1..tt45) so the
// practiced flag survives re-imports of older exports.
func DefaultTongueTwisters() []TongueTwister {
	return []TongueTwister{
		{
			ID:         "tt1",
			Text:       "She sells seashells by the seashore.\nThe shells she sells are surely seashells.\nSo if she sells shells on the seashore, I'm sure she sells seashore shells.",
			IPA:        "ʃiː sɛlz ˈsiːʃɛlz baɪ ðə ˈsiːʃɔːr / ðə ʃɛlz ʃiː sɛlz ɑːr ˈʃʊrli ˈsiːʃɛlz / soʊ ɪf ʃiː sɛlz ʃɛlz ɒn ðə ˈsiːʃɔːr aɪm ʃʊr ʃiː sɛlz ˈsiːʃɔːr ʃɛlz",
			Focus:      []string{"ʃ", "s"},
			Difficulty: 3,
			Notes:      "Practice at a slow speed, increase tempo",
			Examples:   []string{},
		},
		{
			ID:         "tt2",
			Text:       "Peter Piper picked a peck of pickled peppers.\nA peck of pickled peppers Peter Piper picked.\nIf Peter Piper picked a peck of pickled peppers, where's the peck of pickled peppers Peter Piper picked?",
			IPA:        "ˈpiːtər ˈpaɪpər pɪkt ə pɛk əv ˈpɪkəld ˈpɛpərz / ə pɛk əv ˈpɪkəld ˈpɛpərz ˈpiːtər ˈpaɪpər pɪkt / ɪf ˈpiːtər ˈpaɪpər pɪkt ə pɛk əv ˈpɪkəld ˈpɛpərz wɛərz ðə pɛk əv ˈpɪkəld ˈpɛpərz ˈpiːtər ˈpaɪpər pɪkt",
			Focus:      []string{"p"},
			Difficulty: 4,
			Notes:      "Focus on crisp P sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt3",
			Text:       "How can a clam cram in a clean cream can?\nIf a clam can cram in a clean cream can,\nthen why can't a clam cram in a clam cream can?",
			IPA:        "haʊ kæn ə klæm kræm ɪn ə kliːn kriːm kæn / ɪf ə klæm kæn kræm ɪn ə kliːn kriːm kæn / ðɛn waɪ kɑːnt ə klæm kræm ɪn ə klæm kriːm kæn",
			Focus:      []string{"k", "l"},
			Difficulty: 3,
			Notes:      "Watch the CL cluster",
			Examples:   []string{},
		},
		{
			ID:         "tt4",
			Text:       "I scream, you scream, we all scream for ice cream.\nScreaming for ice cream in the summer heat,\nSweet cream dreams on every street.",
			IPA:        "aɪ skriːm juː skriːm wiː ɔːl skriːm fɔːr aɪs kriːm / ˈskriːmɪŋ fɔːr aɪs kriːm ɪn ðə ˈsʌmər hiːt / swiːt kriːm driːmz ɒn ˈɛvri striːt",
			Focus:      []string{"s", "k", "r"},
			Difficulty: 2,
			Notes:      "Clear vowel transitions",
			Examples:   []string{},
		},
		{
			ID:         "tt5",
			Text:       "The thirty-three thieves thought that they thrilled the throne throughout Thursday.\nThey threw things through thick and thin,\nThinking Thursday would be their win.",
			IPA:        "ðə ˈθɜːrti θriː θiːvz θɔːt ðæt ðeɪ θrɪld ðə θroʊn θruːˈaʊt ˈθɜːrzdeɪ / ðeɪ θruː θɪŋz θruː θɪk ænd θɪn / ˈθɪŋkɪŋ ˈθɜːrzdeɪ wʊd biː ðɛər wɪn",
			Focus:      []string{"θ", "ð"},
			Difficulty: 5,
			Notes:      "TH sounds - most challenging",
			Examples:   []string{},
		},
		{
			ID:         "tt6",
			Text:       "Red lorry, yellow lorry, red lorry, yellow lorry.\nRolling down the road all day,\nLorries carrying loads away.",
			IPA:        "rɛd ˈlɒri ˈjɛloʊ ˈlɒri rɛd ˈlɒri ˈjɛloʊ ˈlɒri / ˈroʊlɪŋ daʊn ðə roʊd ɔːl deɪ / ˈlɒriz ˈkæriɪŋ loʊdz əˈweɪ",
			Focus:      []string{"r", "l"},
			Difficulty: 4,
			Notes:      "R and L distinction",
			Examples:   []string{},
		},
		{
			ID:         "tt7",
			Text:       "Which wristwatches are Swiss wristwatches?\nSwiss wristwatches tick with Swiss precision,\nWatching wrists with watchful vision.",
			IPA:        "wɪtʃ ˈrɪstˌwɒtʃɪz ɑːr swɪs ˈrɪstˌwɒtʃɪz / swɪs ˈrɪstˌwɒtʃɪz tɪk wɪð swɪs prɪˈsɪʒən / ˈwɒtʃɪŋ rɪsts wɪð ˈwɒtʃfəl ˈvɪʒən",
			Focus:      []string{"w", "tʃ", "s"},
			Difficulty: 4,
			Notes:      "Complex consonant clusters",
			Examples:   []string{},
		},
		{
			ID:         "tt8",
			Text:       "Six thick thistle sticks.\nThick thistles stick together tight,\nSticking through the day and night.",
			IPA:        "sɪks θɪk ˈθɪsəl stɪks / θɪk ˈθɪsəlz stɪk təˈɡɛðər taɪt / ˈstɪkɪŋ θruː ðə deɪ ænd naɪt",
			Focus:      []string{"θ", "s"},
			Difficulty: 3,
			Notes:      "TH and S combination",
			Examples:   []string{},
		},
		{
			ID:         "tt9",
			Text:       "Betty Botter bought some butter but the butter was bitter.\nSo Betty Botter bought some better butter,\nTo make the bitter butter better.",
			IPA:        "ˈbɛti ˈbɒtər bɔːt səm ˈbʌtər bʌt ðə ˈbʌtər wəz ˈbɪtər / soʊ ˈbɛti ˈbɒtər bɔːt səm ˈbɛtər ˈbʌtər / tə meɪk ðə ˈbɪtər ˈbʌtər ˈbɛtər",
			Focus:      []string{"b", "t"},
			Difficulty: 3,
			Notes:      "B and T plosives",
			Examples:   []string{},
		},
		{
			ID:         "tt10",
			Text:       "I saw a kitten eating chicken in the kitchen.",
			IPA:        "aɪ sɔː ə ˈkɪtən ˈiːtɪŋ ˈtʃɪkən ɪn ðə ˈkɪtʃən",
			Focus:      []string{"ɪ", "tʃ"},
			Difficulty: 2,
			Notes:      "Short I and CH sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt11",
			Text:       "Fuzzy Wuzzy was a bear. Fuzzy Wuzzy had no hair.",
			IPA:        "ˈfʌzi ˈwʌzi wəz ə bɛər ˈfʌzi ˈwʌzi hæd noʊ hɛər",
			Focus:      []string{"f", "w", "z"},
			Difficulty: 2,
			Notes:      "F, W, and Z sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt12",
			Text:       "A proper copper coffee pot.",
			IPA:        "ə ˈprɒpər ˈkɒpər ˈkɒfi pɒt",
			Focus:      []string{"p", "k"},
			Difficulty: 3,
			Notes:      "P and K alternation",
			Examples:   []string{},
		},
		{
			ID:         "tt13",
			Text:       "Around the rugged rock the ragged rascal ran.",
			IPA:        "əˈraʊnd ðə ˈrʌɡɪd rɒk ðə ˈræɡɪd ˈræskəl ræn",
			Focus:      []string{"r", "æ"},
			Difficulty: 4,
			Notes:      "Multiple R sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt14",
			Text:       "Fred fed Ted bread and Ted fed Fred bread.",
			IPA:        "frɛd fɛd tɛd brɛd ænd tɛd fɛd frɛd brɛd",
			Focus:      []string{"f", "t", "d"},
			Difficulty: 3,
			Notes:      "Short E vowel",
			Examples:   []string{},
		},
		{
			ID:         "tt15",
			Text:       "Lesser leather never weathered wetter weather better.",
			IPA:        "ˈlɛsər ˈlɛðər ˈnɛvər ˈwɛðərd ˈwɛtər ˈwɛðər ˈbɛtər",
			Focus:      []string{"ð", "w", "ɛ"},
			Difficulty: 5,
			Notes:      "TH voiced and unvoiced",
			Examples:   []string{},
		},
		{
			ID:         "tt16",
			Text:       "Eleven benevolent elephants.",
			IPA:        "ɪˈlɛvən bəˈnɛvələnt ˈɛlɪfənts",
			Focus:      []string{"ɛ", "l"},
			Difficulty: 2,
			Notes:      "Short E practice",
			Examples:   []string{},
		},
		{
			ID:         "tt17",
			Text:       "Nine nice night nurses nursing nicely.",
			IPA:        "naɪn naɪs naɪt ˈnɜːrsɪz ˈnɜːrsɪŋ ˈnaɪsli",
			Focus:      []string{"n", "aɪ"},
			Difficulty: 3,
			Notes:      "N and long I",
			Examples:   []string{},
		},
		{
			ID:         "tt18",
			Text:       "Can you can a can as a canner can can a can?",
			IPA:        "kæn juː kæn ə kæn æz ə ˈkænər kæn kæn ə kæn",
			Focus:      []string{"k", "æ"},
			Difficulty: 4,
			Notes:      "Short A vowel",
			Examples:   []string{},
		},
		{
			ID:         "tt19",
			Text:       "The big black bug bit the big black bear.",
			IPA:        "ðə bɪɡ blæk bʌɡ bɪt ðə bɪɡ blæk bɛər",
			Focus:      []string{"b", "ɡ"},
			Difficulty: 2,
			Notes:      "B and G sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt20",
			Text:       "Freshly fried fresh flesh.",
			IPA:        "ˈfrɛʃli fraɪd frɛʃ flɛʃ",
			Focus:      []string{"f", "r", "ʃ"},
			Difficulty: 4,
			Notes:      "FR and SH clusters",
			Examples:   []string{},
		},
		{
			ID:         "tt21",
			Text:       "Greek grapes, Greek grapes, Greek grapes.",
			IPA:        "ɡriːk ɡreɪps ɡriːk ɡreɪps ɡriːk ɡreɪps",
			Focus:      []string{"ɡ", "r"},
			Difficulty: 3,
			Notes:      "GR cluster",
			Examples:   []string{},
		},
		{
			ID:         "tt22",
			Text:       "Three free throws.",
			IPA:        "θriː friː θroʊz",
			Focus:      []string{"θ", "f", "r"},
			Difficulty: 3,
			Notes:      "TH and FR",
			Examples:   []string{},
		},
		{
			ID:         "tt23",
			Text:       "Daddy draws doors. Daddy draws doors. Daddy draws doors.",
			IPA:        "ˈdædi drɔːz dɔːrz ˈdædi drɔːz dɔːrz ˈdædi drɔːz dɔːrz",
			Focus:      []string{"d", "r"},
			Difficulty: 2,
			Notes:      "D and R combination",
			Examples:   []string{},
		},
		{
			ID:         "tt24",
			Text:       "Toy boat, toy boat, toy boat.",
			IPA:        "tɔɪ boʊt tɔɪ boʊt tɔɪ boʊt",
			Focus:      []string{"t", "b", "ɔɪ"},
			Difficulty: 3,
			Notes:      "OI diphthong",
			Examples:   []string{},
		},
		{
			ID:         "tt25",
			Text:       "Sheila needs fleece to freeze three sheep.",
			IPA:        "ˈʃiːlə niːdz fliːs tə friːz θriː ʃiːp",
			Focus:      []string{"ʃ", "f", "iː"},
			Difficulty: 4,
			Notes:      "Long E sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt26",
			Text:       "Cooks cook cupcakes quickly.",
			IPA:        "kʊks kʊk ˈkʌpkeɪks ˈkwɪkli",
			Focus:      []string{"k", "ʊ"},
			Difficulty: 2,
			Notes:      "Short U sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt27",
			Text:       "Vincent vowed vengeance very vehemently.",
			IPA:        "ˈvɪnsənt vaʊd ˈvɛndʒəns ˈvɛri ˈviːəməntli",
			Focus:      []string{"v"},
			Difficulty: 3,
			Notes:      "V sound practice",
			Examples:   []string{},
		},
		{
			ID:         "tt28",
			Text:       "Wayne went to Wales to watch walruses.",
			IPA:        "weɪn wɛnt tə weɪlz tə wɒtʃ ˈwɔːlrəsɪz",
			Focus:      []string{"w"},
			Difficulty: 2,
			Notes:      "W sound",
			Examples:   []string{},
		},
		{
			ID:         "tt29",
			Text:       "Six sleek swans swam swiftly southwards.",
			IPA:        "sɪks sliːk swɒnz swæm ˈswɪftli ˈsaʊθwərdz",
			Focus:      []string{"s", "w"},
			Difficulty: 4,
			Notes:      "SW cluster",
			Examples:   []string{},
		},
		{
			ID:         "tt30",
			Text:       "Imagine an imaginary menagerie manager managing an imaginary menagerie.",
			IPA:        "ɪˈmædʒɪn æn ɪˈmædʒɪnɛri məˈnædʒəri ˈmænɪdʒər ˈmænɪdʒɪŋ æn ɪˈmædʒɪnɛri məˈnædʒəri",
			Focus:      []string{"dʒ", "m"},
			Difficulty: 5,
			Notes:      "Complex J sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt31",
			Text:       "I thought a thought but the thought I thought wasn't the thought I thought I thought.",
			IPA:        "aɪ θɔːt ə θɔːt bʌt ðə θɔːt aɪ θɔːt ˈwɒzənt ðə θɔːt aɪ θɔːt aɪ θɔːt",
			Focus:      []string{"θ", "ɔː"},
			Difficulty: 5,
			Notes:      "TH and thought",
			Examples:   []string{},
		},
		{
			ID:         "tt32",
			Text:       "Ann and Andy's anniversary is in April.",
			IPA:        "æn ænd ˈændiːz ˌænɪˈvɜːrsəri ɪz ɪn ˈeɪprəl",
			Focus:      []string{"æ", "n"},
			Difficulty: 2,
			Notes:      "Short A sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt33",
			Text:       "Susie works in a shoeshine shop. Where she shines she sits, and where she sits she shines.",
			IPA:        "ˈsuːzi wɜːrks ɪn ə ˈʃuːʃaɪn ʃɒp wɛər ʃiː ʃaɪnz ʃiː sɪts ænd wɛər ʃiː sɪts ʃiː ʃaɪnz",
			Focus:      []string{"ʃ", "s"},
			Difficulty: 5,
			Notes:      "SH and S distinction",
			Examples:   []string{},
		},
		{
			ID:         "tt34",
			Text:       "Unique New York, unique New York, unique New York.",
			IPA:        "juːˈniːk njuː jɔːrk juːˈniːk njuː jɔːrk juːˈniːk njuː jɔːrk",
			Focus:      []string{"j", "uː"},
			Difficulty: 4,
			Notes:      "Y sound",
			Examples:   []string{},
		},
		{
			ID:         "tt35",
			Text:       "Real rock wall, real rock wall, real rock wall.",
			IPA:        "rɪəl rɒk wɔːl rɪəl rɒk wɔːl rɪəl rɒk wɔːl",
			Focus:      []string{"r", "w"},
			Difficulty: 3,
			Notes:      "R and W combo",
			Examples:   []string{},
		},
		{
			ID:         "tt36",
			Text:       "Zebras zig and zebras zag.",
			IPA:        "ˈziːbrəz zɪɡ ænd ˈziːbrəz zæɡ",
			Focus:      []string{"z", "ɡ"},
			Difficulty: 2,
			Notes:      "Z sound",
			Examples:   []string{},
		},
		{
			ID:         "tt37",
			Text:       "He threw three free throws.",
			IPA:        "hiː θruː θriː friː θroʊz",
			Focus:      []string{"θ", "r"},
			Difficulty: 4,
			Notes:      "THR cluster",
			Examples:   []string{},
		},
		{
			ID:         "tt38",
			Text:       "The queen in green screamed.",
			IPA:        "ðə kwiːn ɪn ɡriːn skriːmd",
			Focus:      []string{"kw", "iː"},
			Difficulty: 2,
			Notes:      "Long E and QU",
			Examples:   []string{},
		},
		{
			ID:         "tt39",
			Text:       "Twelve twins twirled twelve twigs.",
			IPA:        "twɛlv twɪnz twɜːrld twɛlv twɪɡz",
			Focus:      []string{"tw"},
			Difficulty: 3,
			Notes:      "TW cluster",
			Examples:   []string{},
		},
		{
			ID:         "tt40",
			Text:       "A big bug bit the little beetle but the little beetle bit the big bug back.",
			IPA:        "ə bɪɡ bʌɡ bɪt ðə ˈlɪtəl ˈbiːtəl bʌt ðə ˈlɪtəl ˈbiːtəl bɪt ðə bɪɡ bʌɡ bæk",
			Focus:      []string{"b", "t", "l"},
			Difficulty: 4,
			Notes:      "B, T, L sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt41",
			Text:       "Pirates' private property.",
			IPA:        "ˈpaɪrəts ˈpraɪvət ˈprɒpərti",
			Focus:      []string{"p", "r", "aɪ"},
			Difficulty: 3,
			Notes:      "PR cluster",
			Examples:   []string{},
		},
		{
			ID:         "tt42",
			Text:       "The boot black brought the black boot back.",
			IPA:        "ðə buːt blæk brɔːt ðə blæk buːt bæk",
			Focus:      []string{"b", "k"},
			Difficulty: 3,
			Notes:      "BL and B sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt43",
			Text:       "Specific Pacific fish species.",
			IPA:        "spəˈsɪfɪk pəˈsɪfɪk fɪʃ ˈspiːʃiːz",
			Focus:      []string{"s", "f", "ʃ"},
			Difficulty: 4,
			Notes:      "S, F, SH practice",
			Examples:   []string{},
		},
		{
			ID:         "tt44",
			Text:       "Selfish shellfish smell fish.",
			IPA:        "ˈsɛlfɪʃ ˈʃɛlfɪʃ smɛl fɪʃ",
			Focus:      []string{"ʃ", "f", "s"},
			Difficulty: 3,
			Notes:      "SH, F, S sounds",
			Examples:   []string{},
		},
		{
			ID:         "tt45",
			Text:       "Give papa a cup of proper coffee in a copper coffee cup.",
			IPA:        "ɡɪv ˈpɑːpɑː ə kʌp əv ˈprɒpər ˈkɒfi ɪn ə ˈkɒpər ˈkɒfi kʌp",
			Focus:      []string{"p", "k"},
			Difficulty: 4,
			Notes:      "P and K combo",
			Examples:   []string{},
		},
	}
}
